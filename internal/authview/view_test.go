package authview

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelf/internal/form"
	"shelf/internal/router"
)

type change struct {
	mode  Mode
	title string
}

func observe(ch chan<- change) Option {
	return WithObserver(func(mode Mode, title string) {
		ch <- change{mode: mode, title: title}
	})
}

func waitChange(t *testing.T, ch <-chan change) change {
	t.Helper()
	select {
	case c := <-ch:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for route change")
		return change{}
	}
}

func TestModeFromSegments(t *testing.T) {
	for i := 0; i < 50; i++ {
		prefix := make([]string, i%4)
		for j := range prefix {
			prefix[j] = gofakeit.Word()
		}

		mode, err := ModeFromSegments(append(prefix, "login"))
		require.NoError(t, err)
		assert.Equal(t, SignIn, mode)
		assert.Equal(t, "Sign in", mode.Title())

		last := gofakeit.Word()
		if last == "login" {
			continue
		}
		mode, err = ModeFromSegments(append(prefix, last))
		require.NoError(t, err)
		assert.Equal(t, SignUp, mode)
		assert.Equal(t, "Sign up", mode.Title())
	}
}

func TestModeFromSegmentsEmpty(t *testing.T) {
	_, err := ModeFromSegments(nil)
	assert.ErrorIs(t, err, ErrInvalidRoute)

	_, err = ModeFromSegments([]string{})
	assert.ErrorIs(t, err, ErrInvalidRoute)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "SignIn", SignIn.String())
	assert.Equal(t, "SignUp", SignUp.String())
	assert.Equal(t, "Unknown", Mode(42).String())
}

func TestInitialize(t *testing.T) {
	v := New(nil)
	defer v.Close()

	require.NoError(t, v.Initialize([]string{"auth", "login"}, nil))
	assert.Equal(t, SignIn, v.Mode())
	assert.Equal(t, "Sign in", v.Title())

	assert.ErrorIs(t, v.Initialize([]string{"register"}, nil), ErrAlreadyInitialized)
}

func TestInitializeRejectsEmptyRoute(t *testing.T) {
	v := New(nil)
	defer v.Close()

	err := v.Initialize(nil, nil)
	assert.True(t, errors.Is(err, ErrInvalidRoute))

	// a failed initialize leaves the view usable
	require.NoError(t, v.Initialize([]string{"register"}, nil))
	assert.Equal(t, SignUp, v.Mode())
}

func TestInitializeAfterClose(t *testing.T) {
	v := New(nil)
	require.NoError(t, v.Close())
	assert.ErrorIs(t, v.Initialize([]string{"login"}, nil), ErrClosed)
}

func TestIsValid(t *testing.T) {
	values := []string{"", gofakeit.Username()}
	for _, username := range values {
		for _, password := range values {
			v := New(nil)
			require.NoError(t, v.SetField(FieldUsername, username))
			require.NoError(t, v.SetField(FieldPassword, password))

			want := username != "" && password != ""
			assert.Equal(t, want, v.IsValid(), "username=%q password=%q", username, password)
		}
	}
}

func TestSetFieldUnknown(t *testing.T) {
	v := New(nil)
	err := v.SetField("email", "alice@example.com")
	assert.ErrorIs(t, err, form.ErrUnknownField)
}

func TestSubmit(t *testing.T) {
	v := New(nil)
	require.NoError(t, v.SetField(FieldUsername, "alice"))
	require.NoError(t, v.SetField(FieldPassword, "secret"))

	creds, err := v.Submit()
	require.NoError(t, err)
	assert.Equal(t, Credentials{Username: "alice", Password: "secret"}, creds)

	// values are discarded after a successful submit
	assert.False(t, v.IsValid())
	assert.Equal(t, "", v.Value(FieldUsername))
}

func TestSubmitGenerated(t *testing.T) {
	for i := 0; i < 20; i++ {
		username := gofakeit.Username()
		password := gofakeit.Password(true, true, true, true, false, 12)

		v := New(nil)
		require.NoError(t, v.SetField(FieldUsername, username))
		require.NoError(t, v.SetField(FieldPassword, password))

		creds, err := v.Submit()
		require.NoError(t, err)
		assert.Equal(t, username, creds.Username)
		assert.Equal(t, password, creds.Password)
	}
}

func TestSubmitMissingUsername(t *testing.T) {
	v := New(nil)
	require.NoError(t, v.SetField(FieldPassword, "secret"))

	_, err := v.Submit()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{FieldUsername}, verr.Fields)
	assert.True(t, verr.Has(FieldUsername))
	assert.False(t, verr.Has(FieldPassword))
	assert.Contains(t, err.Error(), "username")
	assert.Equal(t, map[string]string{FieldUsername: "is required"}, verr.Messages)

	// the form keeps its values so the user can correct them
	assert.Equal(t, "secret", v.Value(FieldPassword))
}

func TestSubmitBothMissing(t *testing.T) {
	_, err := New(nil).Submit()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{FieldUsername, FieldPassword}, verr.Fields)
}

func TestRouteChanges(t *testing.T) {
	stream := router.NewStream("/auth/login")
	defer stream.Close()

	changes := make(chan change, 8)
	v := New(nil, observe(changes))
	defer v.Close()

	require.NoError(t, v.Initialize(stream.Current(), stream))
	assert.Equal(t, SignIn, v.Mode())

	// the stream replays its current route on subscribe
	assert.Equal(t, change{mode: SignIn, title: "Sign in"}, waitChange(t, changes))

	stream.Publish("/auth/register")
	c := waitChange(t, changes)
	assert.Equal(t, change{mode: SignUp, title: "Sign up"}, c)
	assert.Equal(t, "Sign up", v.Title())

	stream.Publish("/auth/login")
	c = waitChange(t, changes)
	assert.Equal(t, change{mode: SignIn, title: "Sign in"}, c)
	assert.Equal(t, "Sign in", v.Title())

	// one notification per emission
	select {
	case extra := <-changes:
		t.Fatalf("unexpected extra change %+v", extra)
	case <-time.After(50 * time.Millisecond):
	}
}

// racingSource publishes a route on the underlying stream right before subscribing.
type racingSource struct {
	stream *router.Stream
	path   string
}

func (s racingSource) Subscribe() (<-chan []string, func()) {
	s.stream.Publish(s.path)
	return s.stream.Subscribe()
}

func TestRouteChangeBetweenReadAndSubscribe(t *testing.T) {
	stream := router.NewStream("/login")
	defer stream.Close()

	changes := make(chan change, 8)
	v := New(nil, observe(changes))
	defer v.Close()

	segments := stream.Current()
	require.NoError(t, v.Initialize(segments, racingSource{stream: stream, path: "/register"}))

	c := waitChange(t, changes)
	assert.Equal(t, SignUp, c.mode)
	assert.Equal(t, []string{"register"}, stream.Current())
	assert.Equal(t, SignUp, v.Mode())
}

// closingSource closes the view while the subscription is being acquired.
type closingSource struct {
	view      *View
	cancelled chan struct{}
}

func (s closingSource) Subscribe() (<-chan []string, func()) {
	_ = s.view.Close()
	var once sync.Once
	return make(chan []string), func() { once.Do(func() { close(s.cancelled) }) }
}

func TestInitializeReleasesSubscriptionAfterConcurrentClose(t *testing.T) {
	v := New(nil)
	src := closingSource{view: v, cancelled: make(chan struct{})}

	err := v.Initialize([]string{"login"}, src)
	assert.ErrorIs(t, err, ErrClosed)

	select {
	case <-src.cancelled:
	default:
		t.Fatal("subscription acquired after Close was not released")
	}
}

func TestObserverCanCloseAsync(t *testing.T) {
	stream := router.NewStream("/login")
	defer stream.Close()

	closed := make(chan struct{})
	var v *View
	v = New(nil, WithObserver(func(mode Mode, title string) {
		if mode == SignUp {
			go func() {
				_ = v.Close()
				close(closed)
			}()
		}
	}))
	require.NoError(t, v.Initialize(stream.Current(), stream))

	stream.Publish("/register")

	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("Close from observer did not complete")
	}
	assert.ErrorIs(t, v.Initialize([]string{"login"}, nil), ErrClosed)
}

func TestRouteChangeIgnoresEmptyRoute(t *testing.T) {
	stream := router.NewStream("/login")
	defer stream.Close()

	changes := make(chan change, 8)
	v := New(nil, observe(changes))
	defer v.Close()
	require.NoError(t, v.Initialize(stream.Current(), stream))
	assert.Equal(t, SignIn, waitChange(t, changes).mode)

	stream.Publish("/")
	stream.Publish("/register")

	c := waitChange(t, changes)
	assert.Equal(t, SignUp, c.mode)
}

func TestCloseStopsUpdates(t *testing.T) {
	stream := router.NewStream("/login")
	defer stream.Close()

	changes := make(chan change, 8)
	v := New(nil, observe(changes))
	require.NoError(t, v.Initialize(stream.Current(), stream))
	waitChange(t, changes)
	require.NoError(t, v.SetField(FieldUsername, "alice"))

	require.NoError(t, v.Close())
	require.NoError(t, v.Close())

	stream.Publish("/register")
	assert.Equal(t, SignIn, v.Mode())
	assert.Equal(t, "", v.Value(FieldUsername))
	assert.Empty(t, changes)
}

func TestStreamCompletionEndsFollow(t *testing.T) {
	stream := router.NewStream("/register")
	v := New(nil)
	require.NoError(t, v.Initialize(stream.Current(), stream))

	stream.Close()

	done := make(chan struct{})
	go func() {
		_ = v.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return after stream completed")
	}
	assert.Equal(t, SignUp, v.Mode())
}
