//go:build !tinygo

package hal

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

// emit drops the event when the app is not draining the queue.
func (k *hostKeyboard) emit(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}

// tap emits a press and release of code.
func (k *hostKeyboard) tap(code KeyCode) {
	k.emit(KeyEvent{Code: code, Press: true})
	k.emit(KeyEvent{Code: code, Press: false})
}
