package authview

import (
	"errors"
	"sync"

	fiberlog "github.com/gofiber/fiber/v2/log"

	"shelf/internal/form"
)

var (
	ErrAlreadyInitialized = errors.New("authview: view already initialized")
	ErrClosed             = errors.New("authview: view closed")
)

// RouteSource supplies route changes as segment sequences. A source may
// replay its current route on subscribe. Cancel must stop delivery; closing
// the channel signals completion.
type RouteSource interface {
	Subscribe() (updates <-chan []string, cancel func())
}

// Form is the field store and validator behind a View. *form.Group implements it.
type Form interface {
	Set(name, value string) error
	Value(name string) string
	Errors() []form.FieldError
	Reset()
}

// Observer is called once for every route change applied to the view,
// from the goroutine that applies it. Close waits for that goroutine, so an
// observer must not call Close directly; hand it off with `go v.Close()`.
type Observer func(mode Mode, title string)

type Option func(*View)

func WithObserver(fn Observer) Option {
	return func(v *View) {
		v.observers = append(v.observers, fn)
	}
}

// View tracks the active authentication mode and owns the credential form.
type View struct {
	mu          sync.RWMutex
	form        Form
	mode        Mode
	initialized bool
	closed      bool

	observers []Observer
	cancel    func()
	done      chan struct{}
	wg        sync.WaitGroup
}

// New returns a View over f. A nil f gets NewCredentialsForm.
func New(f Form, opts ...Option) *View {
	if f == nil {
		f = NewCredentialsForm()
	}
	v := &View{
		form: f,
		done: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Initialize sets the mode from segments and then follows routes until Close.
// routes may be nil when the route is fixed for the life of the view.
func (v *View) Initialize(segments []string, routes RouteSource) error {
	mode, err := ModeFromSegments(segments)
	if err != nil {
		return err
	}

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrClosed
	}
	if v.initialized {
		v.mu.Unlock()
		return ErrAlreadyInitialized
	}
	v.initialized = true
	v.mode = mode
	v.mu.Unlock()

	if routes == nil {
		return nil
	}

	updates, cancel := routes.Subscribe()

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		cancel()
		return ErrClosed
	}
	v.cancel = cancel
	v.wg.Add(1)
	v.mu.Unlock()

	go v.follow(updates)
	return nil
}

func (v *View) follow(updates <-chan []string) {
	defer v.wg.Done()
	for {
		select {
		case <-v.done:
			return
		case segments, ok := <-updates:
			if !ok {
				return
			}
			v.apply(segments)
		}
	}
}

func (v *View) apply(segments []string) {
	mode, err := ModeFromSegments(segments)
	if err != nil {
		fiberlog.Warn("authview: ignoring route change: ", err)
		return
	}

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.mode = mode
	observers := v.observers
	v.mu.Unlock()

	for _, fn := range observers {
		fn(mode, mode.Title())
	}
}

func (v *View) Mode() Mode {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.mode
}

func (v *View) Title() string {
	return v.Mode().Title()
}

func (v *View) SetField(name, value string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.form.Set(name, value)
}

func (v *View) Value(name string) string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.form.Value(name)
}

func (v *View) IsValid() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.form.Errors()) == 0
}

// Submit returns the current credentials and clears the form. If any field
// fails validation it returns a *ValidationError and leaves the form untouched.
func (v *View) Submit() (Credentials, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if errs := v.form.Errors(); len(errs) > 0 {
		return Credentials{}, newValidationError(errs)
	}

	creds := Credentials{
		Username: v.form.Value(FieldUsername),
		Password: v.form.Value(FieldPassword),
	}
	v.form.Reset()
	return creds, nil
}

// Close releases the route subscription and discards the form values. No
// observer runs after Close returns.
func (v *View) Close() error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return nil
	}
	v.closed = true
	cancel := v.cancel
	v.form.Reset()
	close(v.done)
	v.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	v.wg.Wait()
	return nil
}
