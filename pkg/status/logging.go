// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	entryIndent  = 4  // spaces to indent entry rows
	nameWidth    = 35 // Base width for source path
	outcomeWidth = 10 // Width for outcome text
)

// 🎯 FormatEntryRow formats one entry as an aligned terminal row
func FormatEntryRow(e Entry) string {
	// Determine prefix symbol
	var prefix string
	switch e.Outcome {
	case OutcomeCopied:
		prefix = color.GreenString("✓")
	case OutcomeLinked:
		prefix = color.YellowString("⟳")
	case OutcomeFailed:
		prefix = color.RedString("✗")
	default:
		prefix = color.HiBlackString("-")
	}

	// Format parts with padding
	namePart := fmt.Sprintf("%-*s", nameWidth, e.Path)
	outcomePart := fmt.Sprintf("%-*s", outcomeWidth, e.Outcome.String())

	// Failed rows show the error, everything else the destination
	detail := e.Dest
	if e.Err != nil {
		detail = e.Err.Error()
	}

	// Build final string with indentation
	return fmt.Sprintf("%s%s %s %s %s",
		strings.Repeat(" ", entryIndent),
		prefix,
		namePart,
		outcomePart,
		detail,
	)
}
