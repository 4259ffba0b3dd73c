package copytree

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestCopyError_Message(t *testing.T) {
	cause := errors.New("permission denied")
	err := &CopyError{Src: "/src/a", Dst: "/dst/a", Err: cause}

	assert.Equal(t, "copying /src/a to /dst/a: permission denied", err.Error())
	assert.True(t, errors.Is(err, cause), "the cause stays reachable through Unwrap")
}

func TestAttrError_Message(t *testing.T) {
	cause := errors.New("no such attribute")

	listErr := &AttrError{Path: "/src/a", Namespace: "user", Op: "list", Err: cause}
	assert.Equal(t, "list user attributes on /src/a: no such attribute", listErr.Error())

	getErr := &AttrError{Path: "/src/a", Namespace: "user", Name: "owner", Op: "get", Err: cause}
	assert.Equal(t, "get attribute user.owner on /src/a: no such attribute", getErr.Error())
	assert.True(t, errors.Is(getErr, cause))
}

func TestErrors_Unpack(t *testing.T) {
	assert.Nil(t, Errors(nil))

	plain := errors.New("boom")
	assert.Equal(t, []error{plain}, Errors(plain), "non-aggregates come back as a single cause")

	first := &CopyError{Src: "/s/1", Dst: "/d/1", Err: errors.New("one")}
	second := &CopyError{Src: "/s/2", Dst: "/d/2", Err: errors.New("two")}
	aggregate := multierror.Append(nil, first, second)

	causes := Errors(aggregate)
	require.Len(t, causes, 2)
	assert.Equal(t, first, causes[0])
	assert.Equal(t, second, causes[1])
}

func TestReportLeaves_FlattensNesting(t *testing.T) {
	leaf := &CopyError{Src: "/s/deep", Dst: "/d/deep", Err: errors.New("leaf")}
	inner := multierror.Append(nil, leaf)
	outer := multierror.Append(nil, inner, errors.New("stray"))

	type report struct{ src, dst string }
	var reports []report
	reportLeaves(func(src, dst string, err error) {
		reports = append(reports, report{src, dst})
	}, "/s/entry", "/d/entry", outer)

	require.Len(t, reports, 2, "every leaf is delivered exactly once")
	assert.Equal(t, report{"/s/deep", "/d/deep"}, reports[0], "copy errors keep their own paths")
	assert.Equal(t, report{"/s/entry", "/d/entry"}, reports[1], "bare causes borrow the entry's paths")
}
