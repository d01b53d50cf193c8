package browser

import (
	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
)

// navWatcher signals once the main frame has finished a navigation started
// after it was created. A new document counts once its own loader reports
// network idle. A history API change counts as soon as Chrome reports it.
type navWatcher struct {
	frameID  cdp.FrameID
	loaderID cdp.LoaderID
	done     chan struct{}
}

func newNavWatcher(main *cdp.Frame) *navWatcher {
	return &navWatcher{
		frameID:  main.ID,
		loaderID: main.LoaderID,
		done:     make(chan struct{}, 1),
	}
}

// handle is the target listener. Events from child frames and late events
// from the previous document are ignored.
func (w *navWatcher) handle(ev any) {
	switch e := ev.(type) {
	case *page.EventLifecycleEvent:
		if e.Name != lifecycleNetworkIdle || e.FrameID != w.frameID || e.LoaderID == w.loaderID {
			return
		}
	case *page.EventNavigatedWithinDocument:
		if e.FrameID != w.frameID {
			return
		}
	default:
		return
	}

	select {
	case w.done <- struct{}{}:
	default:
	}
}
