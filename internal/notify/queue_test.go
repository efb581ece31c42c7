package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danimarcos10/feedback-platform/internal/model"
)

func toastIDs(q *Queue) []int64 {
	toasts := q.Toasts()
	ids := make([]int64, 0, len(toasts))
	for _, toast := range toasts {
		ids = append(ids, toast.ID)
	}
	return ids
}

func TestQueue_AddAssignsIncreasingIDs(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	first := q.Add("first", model.NotifyInfo, 0)
	second := q.Add("second", model.NotifySuccess, 0)

	assert.Greater(t, second, first)
	assert.Equal(t, []int64{first, second}, toastIDs(q))
}

func TestQueue_ExpiresAfterDuration(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	id := q.Add("Saved", model.NotifySuccess, 20*time.Millisecond)
	assert.Contains(t, toastIDs(q), id)

	assert.Eventually(t, func() bool {
		return len(q.Toasts()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestQueue_ZeroDurationSticks(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	id := q.Add("sticky", model.NotifyError, 0)
	time.Sleep(30 * time.Millisecond)
	assert.Contains(t, toastIDs(q), id)
}

func TestQueue_RemoveIsIdempotent(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	id := q.Add("Saved", model.NotifySuccess, time.Minute)
	other := q.Add("still here", model.NotifyInfo, time.Minute)

	q.Remove(id)
	q.Remove(id)

	assert.Equal(t, []int64{other}, toastIDs(q))
}

func TestQueue_RemoveUnknownID(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	q.Add("one", model.NotifyInfo, time.Minute)
	q.Remove(42)

	assert.Len(t, q.Toasts(), 1)
}

func TestQueue_Helpers(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	q.Info("heads up")
	q.Success("done")
	q.Error("broke")

	toasts := q.Toasts()
	require.Len(t, toasts, 3)
	assert.Equal(t, model.NotifyInfo, toasts[0].Kind)
	assert.Equal(t, DefaultDuration, toasts[0].Duration)
	assert.Equal(t, model.NotifySuccess, toasts[1].Kind)
	assert.Equal(t, model.NotifyError, toasts[2].Kind)
	assert.Equal(t, DefaultErrorDuration, toasts[2].Duration)
}

func TestQueue_ToastsReturnsCopy(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	q.Info("original")
	toasts := q.Toasts()
	toasts[0].Message = "mutated"

	assert.Equal(t, "original", q.Toasts()[0].Message)
}
