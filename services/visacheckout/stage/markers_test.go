package stage

import (
	"context"
	"testing"
	"time"

	"github.com/brave-intl/visacheckout/services/visacheckout"
	uuid "github.com/satori/go.uuid"
	should "github.com/stretchr/testify/assert"
	must "github.com/stretchr/testify/require"
)

func TestMarkers_LaunchClaim(t *testing.T) {
	ctx := context.Background()
	markers := NewMarkers(time.Minute)
	sessionID := uuid.NewV4()

	_, err := markers.Claim(ctx, sessionID)
	should.ErrorIs(t, err, visacheckout.ErrResultDelivered)

	must.NoError(t, markers.Launch(ctx, sessionID, visacheckout.RequestCode))
	should.ErrorIs(t, markers.Launch(ctx, sessionID, visacheckout.RequestCode), visacheckout.ErrFlowInProgress)

	code, err := markers.Claim(ctx, sessionID)
	must.NoError(t, err)
	should.Equal(t, visacheckout.RequestCode, code)

	_, err = markers.Claim(ctx, sessionID)
	should.ErrorIs(t, err, visacheckout.ErrResultDelivered)

	// a delivered launch frees the session for the next one
	should.NoError(t, markers.Launch(ctx, sessionID, visacheckout.RequestCode))
}

func TestMarkers_Expiry(t *testing.T) {
	ctx := context.Background()
	markers := NewMarkers(10 * time.Millisecond)
	sessionID := uuid.NewV4()

	must.NoError(t, markers.Launch(ctx, sessionID, visacheckout.RequestCode))
	time.Sleep(50 * time.Millisecond)

	_, err := markers.Claim(ctx, sessionID)
	should.ErrorIs(t, err, visacheckout.ErrResultDelivered)
	should.NoError(t, markers.Launch(ctx, sessionID, visacheckout.RequestCode))
}
