package browser

import (
	"testing"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/stretchr/testify/assert"
)

const (
	mainFrame  cdp.FrameID  = "MAIN"
	childFrame cdp.FrameID  = "AD-IFRAME"
	oldLoader  cdp.LoaderID = "LOADER-1"
	newLoader  cdp.LoaderID = "LOADER-2"
)

func fired(w *navWatcher) bool {
	select {
	case <-w.done:
		return true
	default:
		return false
	}
}

func TestNavWatcher(t *testing.T) {
	tests := []struct {
		name   string
		events []any
		want   bool
	}{
		{
			name:   "main frame idle on new document",
			events: []any{&page.EventLifecycleEvent{Name: lifecycleNetworkIdle, FrameID: mainFrame, LoaderID: newLoader}},
			want:   true,
		},
		{
			name:   "child frame idle is ignored",
			events: []any{&page.EventLifecycleEvent{Name: lifecycleNetworkIdle, FrameID: childFrame, LoaderID: newLoader}},
			want:   false,
		},
		{
			name:   "late idle from previous document is ignored",
			events: []any{&page.EventLifecycleEvent{Name: lifecycleNetworkIdle, FrameID: mainFrame, LoaderID: oldLoader}},
			want:   false,
		},
		{
			name:   "other lifecycle events are ignored",
			events: []any{&page.EventLifecycleEvent{Name: "load", FrameID: mainFrame, LoaderID: newLoader}},
			want:   false,
		},
		{
			name:   "same document navigation of main frame",
			events: []any{&page.EventNavigatedWithinDocument{FrameID: mainFrame, URL: "https://example.com/?page=2"}},
			want:   true,
		},
		{
			name:   "same document navigation of child frame is ignored",
			events: []any{&page.EventNavigatedWithinDocument{FrameID: childFrame, URL: "https://ads.example.com/#x"}},
			want:   false,
		},
		{
			name: "repeated idle events do not block",
			events: []any{
				&page.EventLifecycleEvent{Name: lifecycleNetworkIdle, FrameID: mainFrame, LoaderID: newLoader},
				&page.EventLifecycleEvent{Name: lifecycleNetworkIdle, FrameID: mainFrame, LoaderID: newLoader},
			},
			want: true,
		},
		{
			name:   "unrelated events are ignored",
			events: []any{&page.EventFrameStartedLoading{FrameID: mainFrame}},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newNavWatcher(&cdp.Frame{ID: mainFrame, LoaderID: oldLoader})

			for _, ev := range tt.events {
				w.handle(ev)
			}

			assert.Equal(t, tt.want, fired(w))
		})
	}
}
