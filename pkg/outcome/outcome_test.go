package outcome

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codedError struct {
	Message string
	Code    int
}

func (e codedError) Error() string {
	return e.Message + " (" + strconv.Itoa(e.Code) + ")"
}

func TestSuccess(t *testing.T) {
	t.Parallel()

	for _, v := range []int{0, 1, -7, 1 << 30} {
		o := Success[error](v)
		require.True(t, o.IsSuccess())
		require.False(t, o.IsFailure())
		assert.Equal(t, v, o.Value())
		assert.NotEqual(t, uuid.Nil, o.ID())
		assert.False(t, o.CreatedAt().IsZero())
	}
}

func TestFailure(t *testing.T) {
	t.Parallel()

	err := errors.New("bad")
	o := Failure[int](err)
	require.True(t, o.IsFailure())
	require.False(t, o.IsSuccess())
	assert.Same(t, err, o.Error())

	coded := Failure[string](codedError{Message: "not found", Code: 404})
	assert.Equal(t, codedError{Message: "not found", Code: 404}, coded.Error())
}

func TestFailure_AcceptsNarrowerError(t *testing.T) {
	t.Parallel()

	o := Failure[int, error](codedError{Message: "denied", Code: 403})
	var ce codedError
	require.True(t, errors.As(o.Error(), &ce))
	assert.Equal(t, 403, ce.Code)
}

func TestValue_PanicsOnFailure(t *testing.T) {
	t.Parallel()

	o := Failure[int](errors.New("bad"))
	assert.PanicsWithError(t, "outcome: Value called on failure", func() { o.Value() })

	s := Success[error](1)
	assert.PanicsWithError(t, "outcome: Error called on success", func() { s.Error() })
}

func TestValue_PanicIsRecoverable(t *testing.T) {
	t.Parallel()

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		Failure[string]("oops").Value()
	}()

	err, ok := recovered.(error)
	require.True(t, ok)
	assert.ErrorIs(t, err, ErrAccess)
	assert.True(t, IsAccessError(err))
}

func TestTryValueAndTryError(t *testing.T) {
	t.Parallel()

	v, err := Success[string](3).TryValue()
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = Failure[int]("bad").TryValue()
	require.ErrorIs(t, err, ErrAccess)

	e, err := Failure[int]("bad").TryError()
	require.NoError(t, err)
	assert.Equal(t, "bad", e)

	_, err = Success[string](3).TryError()
	var ae *AccessError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Error", ae.Op)
	assert.Equal(t, StateSuccess, ae.State)
}

func TestGet(t *testing.T) {
	t.Parallel()

	v, ok := Success[error]("x").Get()
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	v, ok = Failure[string](errors.New("bad")).Get()
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestValueOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Failure[int](errors.New("bad")).ValueOr(0))
	assert.Equal(t, 7, Success[error](7).ValueOr(0))

	called := false
	got := Success[error](7).ValueOrElse(func() int {
		called = true
		return 0
	})
	assert.Equal(t, 7, got)
	assert.False(t, called)

	assert.Equal(t, 9, Failure[int]("bad").ValueOrElse(func() int { return 9 }))
}

func TestTake_LeavesSourceValid(t *testing.T) {
	t.Parallel()

	src := Success[error]([]int{1, 2, 3})
	moved := src.Take()
	assert.Equal(t, []int{1, 2, 3}, moved)
	assert.True(t, src.IsSuccess())
	assert.Nil(t, src.Value())

	failed := Failure[[]int](errors.New("bad"))
	assert.Equal(t, []int{9}, failed.TakeOr([]int{9}))
	assert.True(t, failed.IsFailure())
	assert.Panics(t, func() { failed.Take() })

	e := failed.TakeError()
	assert.EqualError(t, e, "bad")
	assert.True(t, failed.IsFailure())
	assert.Nil(t, failed.Error())
}

func TestCopy_IsIndependent(t *testing.T) {
	t.Parallel()

	orig := Failure[int](codedError{Message: "bad", Code: 1})
	cp := orig
	cp.err.Code = 2
	cp.err.Message = "changed"

	assert.Equal(t, codedError{Message: "bad", Code: 1}, orig.Error())
	assert.Equal(t, codedError{Message: "changed", Code: 2}, cp.Error())
}

func TestZero(t *testing.T) {
	t.Parallel()

	var o Outcome[int, error]
	assert.True(t, o.IsZero())
	assert.True(t, o.IsFailure())
	assert.NoError(t, o.Error())

	assert.False(t, Failure[int](errors.New("bad")).IsZero())
	assert.False(t, Success[error](0).IsZero())
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Success(5)", Success[error](5).String())
	assert.Equal(t, "Failure(bad)", Failure[int](errors.New("bad")).String())
	assert.Equal(t, "Success", Ok[error]().String())
}

func TestFormat_StringErrorSide(t *testing.T) {
	t.Parallel()

	ok := Success[string](5)
	assert.Equal(t, "Success(5)", fmt.Sprintf("%v", ok))
	assert.Equal(t, "Success(5)", fmt.Sprintf("%s", ok))
	assert.Equal(t, "Success(5)", fmt.Sprint(ok))
	assert.Equal(t, "Failure(bad)", fmt.Sprintf("%v", Failure[int]("bad")))
	assert.Equal(t, "Success", fmt.Sprint(Ok[string]()))
	assert.Equal(t, "[Success(1) Failure(x)]", fmt.Sprint([]Outcome[int, string]{Success[string](1), Failure[int]("x")}))
}

func TestSameTypeTags(t *testing.T) {
	t.Parallel()

	ok := FromSuccess[string](MakeSuccess("fine"))
	bad := FromError[string](MakeError("broken"))

	require.True(t, ok.IsSuccess())
	assert.Equal(t, "fine", ok.Value())
	require.True(t, bad.IsFailure())
	assert.Equal(t, "broken", bad.Error())
}

func TestWidenError(t *testing.T) {
	t.Parallel()

	tag, ok := WidenError[error](MakeError(codedError{Message: "gone", Code: 410}))
	require.True(t, ok)
	o := FromError[int](tag)
	assert.EqualError(t, o.Error(), "gone (410)")

	_, ok = WidenError[error](MakeError(42))
	assert.False(t, ok)
}

func TestMustAndCatch(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Must(Success[error](1)))

	boom := errors.New("boom")
	assert.PanicsWithValue(t, boom, func() { Must(Failure[int](boom)) })

	caught := Catch(func() int { return Failure[int]("bad").Value() })
	require.True(t, caught.IsFailure())
	assert.ErrorIs(t, caught.Error(), ErrAccess)

	caught = Catch(func() int { panic("plain") })
	assert.EqualError(t, caught.Error(), "outcome: panic: plain")

	assert.Equal(t, 4, Catch(func() int { return 4 }).Value())
}

func TestTuple(t *testing.T) {
	t.Parallel()

	o := FromTuple(strconv.Atoi("12"))
	require.True(t, o.IsSuccess())
	assert.Equal(t, 12, o.Value())

	o = FromTuple(strconv.Atoi("x"))
	require.True(t, o.IsFailure())

	v, err := Unpack(o)
	assert.Zero(t, v)
	assert.Error(t, err)

	v, err = Unpack(Success[error](5))
	assert.NoError(t, err)
	assert.Equal(t, 5, v)
}
