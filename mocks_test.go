package sessionauth_test

import (
	"context"
	"fmt"
	"time"

	"github.com/goliatone/go-router"
	sessionauth "github.com/goliatone/go-session-auth"
)

// fakeContext implements sessionauth.RequestContext with in-memory request
// state, recording every cookie and header the code under test writes.
type fakeContext struct {
	cookies    map[string]string
	headers    map[string]string
	locals     map[any]any
	setCookies []*router.Cookie
	setHeaders map[string]string
}

func newFakeContext() *fakeContext {
	return &fakeContext{
		cookies:    map[string]string{},
		headers:    map[string]string{},
		locals:     map[any]any{},
		setHeaders: map[string]string{},
	}
}

func (f *fakeContext) WithCookie(name, value string) *fakeContext {
	f.cookies[name] = value
	return f
}

func (f *fakeContext) WithHeader(key, value string) *fakeContext {
	f.headers[key] = value
	return f
}

func (f *fakeContext) Context() context.Context {
	return context.Background()
}

func (f *fakeContext) Cookie(cookie *router.Cookie) {
	f.setCookies = append(f.setCookies, cookie)
}

func (f *fakeContext) Cookies(key string, defaultValue ...string) string {
	if value, ok := f.cookies[key]; ok {
		return value
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

func (f *fakeContext) GetString(key string, defaultValue string) string {
	if value, ok := f.headers[key]; ok {
		return value
	}
	return defaultValue
}

func (f *fakeContext) SetHeader(key string, value string) router.Context {
	f.setHeaders[key] = value
	return nil
}

func (f *fakeContext) Locals(key any, value ...any) any {
	if len(value) > 0 {
		f.locals[key] = value[0]
		return nil
	}
	return f.locals[key]
}

func (f *fakeContext) lastCookie() *router.Cookie {
	if len(f.setCookies) == 0 {
		return nil
	}
	return f.setCookies[len(f.setCookies)-1]
}

// recordingLogger captures formatted log lines per level.
type recordingLogger struct {
	debugs []string
	infos  []string
	warns  []string
	errors []string
}

func (l *recordingLogger) Debug(format string, args ...any) {
	l.debugs = append(l.debugs, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Info(format string, args ...any) {
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Warn(format string, args ...any) {
	l.warns = append(l.warns, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Error(format string, args ...any) {
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

// countingSerializer wraps a real serializer and tallies calls, used to
// assert that resolution is memoized.
type countingSerializer struct {
	inner sessionauth.TokenSerializer
	dumps int
	loads int
}

func (s *countingSerializer) DumpToken(authID string) (string, error) {
	s.dumps++
	return s.inner.DumpToken(authID)
}

func (s *countingSerializer) LoadToken(token string, maxAge time.Duration) (string, error) {
	s.loads++
	return s.inner.LoadToken(token, maxAge)
}
