package tui

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/msgview/internal/core/styles"
)

func TestToastController_Push(t *testing.T) {
	c := NewToastController()

	c.Push(ToastInfo, "hello")

	assert.True(t, c.HasToasts())
	assert.Equal(t, []string{"hello"}, c.Messages())
	assert.Equal(t, defaultToastTTL, c.toasts[0].remaining)
}

func TestToastController_Push_evicts_oldest_at_max(t *testing.T) {
	c := NewToastController()

	for i := range defaultMaxToasts + 2 {
		c.Push(ToastInfo, strconv.Itoa(i))
	}

	require.Len(t, c.Messages(), defaultMaxToasts)
	assert.Equal(t, "2", c.Messages()[0])
}

func TestToastController_Tick(t *testing.T) {
	c := NewToastController()
	c.Push(ToastInfo, "expires")
	c.Push(ToastInfo, "survives")

	c.Tick(time.Second)
	assert.Equal(t, defaultToastTTL-time.Second, c.toasts[1].remaining)

	c.toasts[0].remaining = 50 * time.Millisecond
	c.Tick(toastTickInterval)

	assert.Equal(t, []string{"survives"}, c.Messages())
}

func TestToastController_Dismiss(t *testing.T) {
	c := NewToastController()
	c.Dismiss()
	assert.False(t, c.HasToasts())

	c.Push(ToastInfo, "first")
	c.Push(ToastError, "second")
	c.Dismiss()

	assert.Equal(t, []string{"first"}, c.Messages())
}

func TestRenderToasts(t *testing.T) {
	c := NewToastController()
	assert.Empty(t, renderToasts(c))

	c.Push(ToastInfo, "opened")
	c.Push(ToastError, "failed")

	out := renderToasts(c)
	assert.Contains(t, out, styles.IconNotifyInfo+" opened")
	assert.Contains(t, out, styles.IconNotifyError+" failed")
	assert.Less(t, strings.Index(out, "opened"), strings.Index(out, "failed"), "oldest first")
}

func TestOverlayToasts(t *testing.T) {
	c := NewToastController()
	background := strings.Repeat(strings.Repeat(".", 80)+"\n", 11) + strings.Repeat(".", 80)

	assert.Equal(t, background, overlayToasts(c, background, 80, 12))

	c.Push(ToastInfo, "hello")
	out := overlayToasts(c, background, 80, 12)
	assert.Contains(t, out, "hello")
	assert.True(t, strings.HasPrefix(out, strings.Repeat(".", 80)), "top rows keep the background")
}
