package visacheckout_test

import (
	"context"
	"errors"
	"os"
	"testing"

	testutils "github.com/brave-intl/visacheckout/libs/test"
	"github.com/brave-intl/visacheckout/services/visacheckout"
	"github.com/brave-intl/visacheckout/services/visacheckout/mock"
	"github.com/golang/mock/gomock"
	uuid "github.com/satori/go.uuid"
	should "github.com/stretchr/testify/assert"
	must "github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type FlowTestSuite struct {
	suite.Suite

	ctrl      *gomock.Controller
	fetcher   *mock.MockConfigurationFetcher
	loader    *mock.MockLibraryLoader
	stager    *mock.MockStager
	launcher  *mock.MockLauncher
	tokenizer *mock.MockTokenizer
	analytics *mock.MockAnalyticsSink
	cb        *mock.MockCallback

	cfg     *visacheckout.Configuration
	summary []byte
	svc     *visacheckout.Service
}

func TestFlowTestSuite(t *testing.T) {
	suite.Run(t, new(FlowTestSuite))
}

func (s *FlowTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.fetcher = mock.NewMockConfigurationFetcher(s.ctrl)
	s.loader = mock.NewMockLibraryLoader(s.ctrl)
	s.stager = mock.NewMockStager(s.ctrl)
	s.launcher = mock.NewMockLauncher(s.ctrl)
	s.tokenizer = mock.NewMockTokenizer(s.ctrl)
	s.analytics = mock.NewMockAnalyticsSink(s.ctrl)
	s.cb = mock.NewMockCallback(s.ctrl)

	b, err := os.ReadFile("testdata/with_visaCheckout.json")
	s.Require().NoError(err)

	s.cfg, err = visacheckout.ConfigurationFromJSON(b)
	s.Require().NoError(err)

	s.summary, err = os.ReadFile("testdata/payment_summary.json")
	s.Require().NoError(err)

	s.svc = visacheckout.NewService(
		s.fetcher,
		s.loader,
		s.stager,
		s.launcher,
		s.tokenizer,
		visacheckout.WithAnalytics(s.analytics),
	)
}

func (s *FlowTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *FlowTestSuite) newFlow(cfg *visacheckout.Configuration) *visacheckout.Flow {
	s.fetcher.EXPECT().Configuration(gomock.Any()).Return(cfg, nil)

	flow, err := s.svc.NewFlow(context.Background(), s.cb)
	s.Require().NoError(err)
	s.Require().Equal(visacheckout.StateIdle, flow.State())

	return flow
}

func (s *FlowTestSuite) TestCreateLibrary() {
	flow := s.newFlow(s.cfg)

	lib := &visacheckout.Library{SDKURL: "https://example.com/sdk.js"}
	expected := visacheckout.EnvironmentConfig{
		Environment:        visacheckout.EnvironmentSandbox,
		MerchantAPIKey:     "gwApikey",
		RequestCode:        visacheckout.RequestCode,
		AcceptedCardBrands: []string{"VISA", "MASTERCARD", "AMEX", "DISCOVER"},
	}

	gomock.InOrder(
		s.loader.EXPECT().Available().Return(true),
		s.stager.EXPECT().StageEnvironment(gomock.Any(), flow.SessionID(), expected).Return(nil),
		s.loader.EXPECT().Load(gomock.Any(), expected).Return(lib, nil),
		s.cb.EXPECT().OnLibrary(lib),
	)

	s.Require().NoError(flow.CreateLibrary(context.Background()))

	env, ok := flow.Environment()
	s.True(ok)
	s.Equal(expected, env)
}

func (s *FlowTestSuite) TestCreateLibrary_NilLibraryIsDelivered() {
	flow := s.newFlow(s.cfg)

	s.loader.EXPECT().Available().Return(true)
	s.stager.EXPECT().StageEnvironment(gomock.Any(), flow.SessionID(), gomock.Any()).Return(nil)
	s.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, nil)
	s.cb.EXPECT().OnLibrary(nil)

	s.Require().NoError(flow.CreateLibrary(context.Background()))
}

func (s *FlowTestSuite) TestCreateLibrary_NotEnabled() {
	flow := s.newFlow(&visacheckout.Configuration{Environment: "production"})

	// the loader and stager have no expectations, any call fails the test
	s.cb.EXPECT().OnError(gomock.Any()).Do(func(err error) {
		var cerr *visacheckout.ConfigurationError
		s.True(errors.As(err, &cerr))
		s.Equal("Visa Checkout is not enabled.", err.Error())
	})

	s.Require().NoError(flow.CreateLibrary(context.Background()))
	s.Equal(visacheckout.StateFailed, flow.State())
	s.ErrorIs(flow.CreateLibrary(context.Background()), visacheckout.ErrResultDelivered)
}

func (s *FlowTestSuite) TestCreateLibrary_StageError() {
	flow := s.newFlow(s.cfg)

	s.loader.EXPECT().Available().Return(true)
	s.stager.EXPECT().StageEnvironment(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	s.Error(flow.CreateLibrary(context.Background()))
}

func (s *FlowTestSuite) TestAuthorize() {
	flow := s.newFlow(s.cfg)

	req := &visacheckout.PaymentRequest{
		MerchantInfo: &visacheckout.MerchantInfo{APIKey: "merchantApiKey", DataLevel: visacheckout.DataLevelSummary},
		Description:  "description",
	}
	user := &visacheckout.UserInfo{FirstName: "first", Email: "first@example.com"}

	gomock.InOrder(
		s.stager.EXPECT().StageRequest(gomock.Any(), flow.SessionID(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, staged *visacheckout.PaymentRequest) error {
				s.Equal("merchantApiKey", staged.MerchantInfo.APIKey)
				s.Equal("gwExternalClientId", staged.ExternalClientID)
				s.Equal(visacheckout.DataLevelFull, staged.MerchantInfo.DataLevel)
				s.Equal("description", staged.Description)
				s.Equal(user, staged.UserInfo)
				return nil
			}),
		s.launcher.EXPECT().Launch(gomock.Any(), flow.SessionID(), visacheckout.RequestCode).Return(nil),
	)

	s.Require().NoError(flow.Authorize(context.Background(), req, user))
	s.Equal(visacheckout.StateAwaiting, flow.State())

	s.ErrorIs(flow.Authorize(context.Background(), req, user), visacheckout.ErrFlowInProgress)
}

func (s *FlowTestSuite) TestAuthorize_UserInfoKept() {
	flow := s.newFlow(s.cfg)

	own := &visacheckout.UserInfo{FirstName: "own"}

	s.stager.EXPECT().StageRequest(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, staged *visacheckout.PaymentRequest) error {
			s.Equal("own", staged.UserInfo.FirstName)
			return nil
		})
	s.launcher.EXPECT().Launch(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	req := &visacheckout.PaymentRequest{UserInfo: own}
	s.Require().NoError(flow.Authorize(context.Background(), req, &visacheckout.UserInfo{FirstName: "loggedIn"}))
}

func (s *FlowTestSuite) TestAuthorize_LaunchRejected() {
	flow := s.newFlow(s.cfg)

	gomock.InOrder(
		s.stager.EXPECT().StageRequest(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		s.launcher.EXPECT().Launch(gomock.Any(), gomock.Any(), gomock.Any()).Return(visacheckout.ErrFlowInProgress),
		s.stager.EXPECT().Consume(gomock.Any(), flow.SessionID()).Return(&visacheckout.Staged{}, nil),
	)

	err := flow.Authorize(context.Background(), nil, nil)
	s.ErrorIs(err, visacheckout.ErrFlowInProgress)
	s.Equal(visacheckout.StateIdle, flow.State())
}

func (s *FlowTestSuite) TestOnResult_OKTokenizeSucceeded() {
	flow := s.newFlow(s.cfg)

	nonce := &visacheckout.Nonce{Nonce: "123456-12345-12345-a-adfa"}
	expectedBody := `{
		"visaCheckoutCard": {
			"callId": "stubbedCallId",
			"encryptedKey": "stubbedEncKey",
			"encryptedPaymentData": "stubbedEncPaymentData"
		},
		"_meta": {
			"source": "visa-checkout",
			"integration": "custom",
			"sessionId": "` + flow.SessionID().String() + `",
			"platform": "web"
		}
	}`

	gomock.InOrder(
		s.analytics.EXPECT().SendEvent(gomock.Any(), visacheckout.EventActivityResultOK),
		s.tokenizer.EXPECT().Tokenize(gomock.Any(), testutils.JSONEq(expectedBody)).Return(nonce, nil),
		s.analytics.EXPECT().SendEvent(gomock.Any(), visacheckout.EventTokenizeSucceeded),
		s.cb.EXPECT().OnNonce(nonce),
	)

	s.Require().NoError(flow.OnResult(context.Background(), visacheckout.Result{
		RequestCode: visacheckout.RequestCode,
		Code:        visacheckout.ResultOK,
		Payload:     s.summary,
	}))
	s.Equal(visacheckout.StateSucceeded, flow.State())
}

func (s *FlowTestSuite) TestOnResult_OKTokenizeFailed() {
	flow := s.newFlow(s.cfg)

	cause := errors.New("gateway unavailable")

	gomock.InOrder(
		s.analytics.EXPECT().SendEvent(gomock.Any(), visacheckout.EventActivityResultOK),
		s.tokenizer.EXPECT().Tokenize(gomock.Any(), gomock.Any()).Return(nil, cause),
		s.analytics.EXPECT().SendEvent(gomock.Any(), visacheckout.EventTokenizeFailed),
		s.cb.EXPECT().OnError(gomock.Any()).Do(func(err error) {
			var terr *visacheckout.TokenizationError
			s.True(errors.As(err, &terr))
			s.Equal("gateway unavailable", err.Error())
		}),
	)

	s.Require().NoError(flow.OnResult(context.Background(), visacheckout.Result{Code: visacheckout.ResultOK, Payload: s.summary}))
	s.Equal(visacheckout.StateFailed, flow.State())
}

func (s *FlowTestSuite) TestOnResult_OKWithoutSummary() {
	flow := s.newFlow(s.cfg)

	gomock.InOrder(
		s.analytics.EXPECT().SendEvent(gomock.Any(), visacheckout.EventActivityResultFailed),
		s.cb.EXPECT().OnError(visacheckout.ErrMissingSummary),
	)

	s.Require().NoError(flow.OnResult(context.Background(), visacheckout.Result{Code: visacheckout.ResultOK}))
	s.Equal(visacheckout.StateFailed, flow.State())
}

func (s *FlowTestSuite) TestOnResult_Canceled() {
	flow := s.newFlow(s.cfg)

	gomock.InOrder(
		s.analytics.EXPECT().SendEvent(gomock.Any(), visacheckout.EventActivityResultCanceled),
		s.cb.EXPECT().OnCancel(visacheckout.RequestCode),
	)

	// the tokenizer has no expectations, canceled results never tokenize
	s.Require().NoError(flow.OnResult(context.Background(), visacheckout.Result{Code: visacheckout.ResultCanceled, Payload: s.summary}))
	s.Equal(visacheckout.StateCanceled, flow.State())
}

func (s *FlowTestSuite) TestOnResult_Failed() {
	flow := s.newFlow(s.cfg)

	gomock.InOrder(
		s.analytics.EXPECT().SendEvent(gomock.Any(), visacheckout.EventActivityResultFailed),
		s.cb.EXPECT().OnError(gomock.Any()).Do(func(err error) {
			s.Equal("Visa Checkout responded with resultCode=-100", err.Error())

			var ferr *visacheckout.ExternalFlowError
			s.Require().True(errors.As(err, &ferr))
			s.Equal(visacheckout.ResultCode(-100), ferr.Code)
		}),
	)

	s.Require().NoError(flow.OnResult(context.Background(), visacheckout.Result{Code: -100}))
}

func (s *FlowTestSuite) TestOnResult_Replay() {
	flow := s.newFlow(s.cfg)

	s.analytics.EXPECT().SendEvent(gomock.Any(), visacheckout.EventActivityResultCanceled).Times(1)
	s.cb.EXPECT().OnCancel(visacheckout.RequestCode).Times(1)

	s.Require().NoError(flow.OnResult(context.Background(), visacheckout.Result{Code: visacheckout.ResultCanceled}))

	s.ErrorIs(flow.OnResult(context.Background(), visacheckout.Result{Code: visacheckout.ResultCanceled}), visacheckout.ErrResultDelivered)
	s.ErrorIs(flow.OnResult(context.Background(), visacheckout.Result{Code: visacheckout.ResultOK, Payload: s.summary}), visacheckout.ErrResultDelivered)
	s.ErrorIs(flow.Authorize(context.Background(), nil, nil), visacheckout.ErrResultDelivered)
}

func (s *FlowTestSuite) TestOnResult_UnknownRequestCode() {
	flow := s.newFlow(s.cfg)

	err := flow.OnResult(context.Background(), visacheckout.Result{RequestCode: 1, Code: visacheckout.ResultOK})
	s.ErrorIs(err, visacheckout.ErrUnknownRequestCode)
	s.Equal(visacheckout.StateIdle, flow.State())
}

func (s *FlowTestSuite) TestOnResult_ClaimRejected() {
	claimer := mock.NewMockClaimer(s.ctrl)
	s.svc = visacheckout.NewService(
		s.fetcher,
		s.loader,
		s.stager,
		s.launcher,
		s.tokenizer,
		visacheckout.WithAnalytics(s.analytics),
		visacheckout.WithClaimer(claimer),
	)

	flow := s.newFlow(s.cfg)

	claimer.EXPECT().Claim(gomock.Any(), flow.SessionID()).Return(0, visacheckout.ErrResultDelivered)

	err := flow.OnResult(context.Background(), visacheckout.Result{Code: visacheckout.ResultCanceled})
	s.ErrorIs(err, visacheckout.ErrResultDelivered)
	s.Equal(visacheckout.StateIdle, flow.State())
}

func (s *FlowTestSuite) TestTokenize() {
	flow := s.newFlow(s.cfg)

	summary, err := visacheckout.DecodeSummary(s.summary)
	s.Require().NoError(err)

	nonce := &visacheckout.Nonce{Nonce: "123456-12345-12345-a-adfa"}

	gomock.InOrder(
		s.tokenizer.EXPECT().Tokenize(gomock.Any(), gomock.Any()).Return(nonce, nil),
		s.analytics.EXPECT().SendEvent(gomock.Any(), visacheckout.EventTokenizeSucceeded),
		s.cb.EXPECT().OnNonce(nonce),
	)

	s.Require().NoError(flow.Tokenize(context.Background(), summary))
	s.ErrorIs(flow.Tokenize(context.Background(), summary), visacheckout.ErrResultDelivered)
}

func TestService_Resume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mock.NewMockConfigurationFetcher(ctrl)
	svc := visacheckout.NewService(fetcher, nil, nil, nil, nil)

	_, err := svc.Resume(context.Background(), uuid.Nil, nil)
	should.ErrorIs(t, err, visacheckout.ErrInvalidSessionID)

	fetcher.EXPECT().Configuration(gomock.Any()).Return(nil, errors.New("gateway down"))
	_, err = svc.Resume(context.Background(), uuid.NewV4(), nil)
	should.Error(t, err)

	id := uuid.NewV4()
	fetcher.EXPECT().Configuration(gomock.Any()).Return(&visacheckout.Configuration{}, nil)
	flow, err := svc.Resume(context.Background(), id, nil)
	must.NoError(t, err)
	should.Equal(t, id, flow.SessionID())
}

func TestSessionIDFromContext(t *testing.T) {
	id := uuid.NewV4()

	_, ok := visacheckout.SessionIDFromContext(context.Background())
	should.False(t, ok)

	actual, ok := visacheckout.SessionIDFromContext(visacheckout.ContextWithSessionID(context.Background(), id))
	should.True(t, ok)
	should.Equal(t, id, actual)
}
