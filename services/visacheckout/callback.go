package visacheckout

import "sync"

// Callback receives the outcome of a flow.
//
// OnLibrary may be called before the terminal outcome. Exactly one of OnNonce, OnCancel
// and OnError is called per flow.
type Callback interface {
	OnLibrary(lib *Library)
	OnNonce(nonce *Nonce)
	OnCancel(requestCode int)
	OnError(err error)
}

// CallbackFuncs adapts funcs to Callback, nil funcs are skipped.
type CallbackFuncs struct {
	FnOnLibrary func(lib *Library)
	FnOnNonce   func(nonce *Nonce)
	FnOnCancel  func(requestCode int)
	FnOnError   func(err error)
}

func (c CallbackFuncs) OnLibrary(lib *Library) {
	if c.FnOnLibrary != nil {
		c.FnOnLibrary(lib)
	}
}

func (c CallbackFuncs) OnNonce(nonce *Nonce) {
	if c.FnOnNonce != nil {
		c.FnOnNonce(nonce)
	}
}

func (c CallbackFuncs) OnCancel(requestCode int) {
	if c.FnOnCancel != nil {
		c.FnOnCancel(requestCode)
	}
}

func (c CallbackFuncs) OnError(err error) {
	if c.FnOnError != nil {
		c.FnOnError(err)
	}
}

// Outcome is the terminal result captured by a Recorder.
type Outcome struct {
	Nonce       *Nonce
	Canceled    bool
	RequestCode int
	Err         error
}

// Recorder is a Callback that keeps the library and the single terminal outcome.
type Recorder struct {
	mu      sync.Mutex
	library *Library
	loaded  bool
	outcome *Outcome
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) OnLibrary(lib *Library) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.library = lib
	r.loaded = true
}

func (r *Recorder) OnNonce(nonce *Nonce) {
	r.record(&Outcome{Nonce: nonce})
}

func (r *Recorder) OnCancel(requestCode int) {
	r.record(&Outcome{Canceled: true, RequestCode: requestCode})
}

func (r *Recorder) OnError(err error) {
	r.record(&Outcome{Err: err})
}

// Library reports the delivered library and whether OnLibrary was called at all.
func (r *Recorder) Library() (*Library, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.library, r.loaded
}

// Outcome returns the terminal outcome or nil if none was delivered yet.
func (r *Recorder) Outcome() *Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.outcome
}

func (r *Recorder) record(o *Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.outcome != nil {
		return
	}

	r.outcome = o
}
