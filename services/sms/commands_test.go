package sms

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeCanceller struct {
	cancelled bool
	err       error
	gotPhone  string
}

func (f *fakeCanceller) CancelNextByPhone(ctx context.Context, phone string) (bool, error) {
	f.gotPhone = phone
	return f.cancelled, f.err
}

func newRouter(c *fakeCanceller) *CommandRouter {
	return &CommandRouter{
		Canceller:    c,
		SiteURL:      "https://tidyhouse.test",
		SupportPhone: "555-0199",
		Logger:       zap.NewNop(),
	}
}

func TestHandleScheduleKeyword(t *testing.T) {
	r := newRouter(&fakeCanceller{})
	reply := r.Handle(context.Background(), "+14145550100", "  Schedule ")
	assert.Contains(t, reply, "https://tidyhouse.test/booking")
}

func TestHandleHelpKeyword(t *testing.T) {
	r := newRouter(&fakeCanceller{})
	reply := r.Handle(context.Background(), "+14145550100", "HELP")
	assert.Contains(t, reply, "555-0199")
}

func TestHandleCancelSuccess(t *testing.T) {
	c := &fakeCanceller{cancelled: true}
	r := newRouter(c)
	reply := r.Handle(context.Background(), "+14145550100", "cancel")
	assert.Contains(t, reply, "cancelled")
	assert.Equal(t, "+14145550100", c.gotPhone)
}

func TestHandleCancelNothingFound(t *testing.T) {
	r := newRouter(&fakeCanceller{cancelled: false})
	reply := r.Handle(context.Background(), "+14145550100", "cancel")
	assert.Contains(t, reply, "could not find")
}

func TestHandleCancelError(t *testing.T) {
	r := newRouter(&fakeCanceller{err: errors.New("db down")})
	reply := r.Handle(context.Background(), "+14145550100", "cancel")
	assert.Contains(t, reply, "something went wrong")
}

func TestHandleUnknownMessage(t *testing.T) {
	r := newRouter(&fakeCanceller{})
	reply := r.Handle(context.Background(), "+14145550100", "do you do windows?")
	assert.Contains(t, reply, "received your note")
}
