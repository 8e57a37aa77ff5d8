package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	apperrors "phishing-simulator-backend/internal/errors"
	"phishing-simulator-backend/internal/mocks"
	"phishing-simulator-backend/internal/service"
	"phishing-simulator-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TrackingHandlerTestSuite defines the test suite for TrackingHandler
type TrackingHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockTrackingService *mocks.MockTrackingServiceInterface
	handler             *TrackingHandler
	httpSuite           *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TrackingHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTrackingService = mocks.NewMockTrackingServiceInterface(suite.ctrl)
	suite.handler = NewTrackingHandler(suite.mockTrackingService)

	suite.httpSuite = testutils.SetupHTTPTest()
	track := suite.httpSuite.Router.Group("/track/:token")
	{
		track.GET("/open", suite.handler.Open)
		track.GET("/click", suite.handler.Click)
		track.POST("/submit", suite.handler.Submit)
		track.POST("/report", suite.handler.Report)
	}
}

// TearDownTest cleans up after each test
func (suite *TrackingHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TrackingHandlerTestSuite) TestOpenServesPixel() {
	suite.mockTrackingService.EXPECT().
		Open(gomock.Any(), "tok-1", gomock.Any()).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/track/tok-1/open", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Equal(suite.T(), "image/gif", recorder.Header().Get("Content-Type"))
	assert.Equal(suite.T(), transparentGIF, recorder.Body.Bytes())
}

func (suite *TrackingHandlerTestSuite) TestOpenUnknownTokenStillServesPixel() {
	suite.mockTrackingService.EXPECT().
		Open(gomock.Any(), "missing", gomock.Any()).
		Return(apperrors.ErrTrackingTokenNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/track/missing/open", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Equal(suite.T(), "image/gif", recorder.Header().Get("Content-Type"))
}

func (suite *TrackingHandlerTestSuite) TestClickPassesClientDetails() {
	suite.mockTrackingService.EXPECT().
		Click(gomock.Any(), "tok-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req service.TrackingRequest) (*service.LandingResult, error) {
			assert.Equal(suite.T(), "phish-test-agent", req.UserAgent)
			return &service.LandingResult{HTML: "<html>Login</html>"}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequestWithHeaders("GET", "/track/tok-1/click", nil,
		map[string]string{"User-Agent": "phish-test-agent"})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Contains(suite.T(), recorder.Header().Get("Content-Type"), "text/html")
	assert.Equal(suite.T(), "<html>Login</html>", recorder.Body.String())
}

func (suite *TrackingHandlerTestSuite) TestClickRedirects() {
	suite.mockTrackingService.EXPECT().
		Click(gomock.Any(), "tok-1", gomock.Any()).
		Return(&service.LandingResult{RedirectURL: "https://example.com/awareness"}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/track/tok-1/click", nil)

	assert.Equal(suite.T(), http.StatusFound, recorder.Code)
	assert.Equal(suite.T(), "https://example.com/awareness", recorder.Header().Get("Location"))
}

func (suite *TrackingHandlerTestSuite) TestClickUnknownToken() {
	suite.mockTrackingService.EXPECT().
		Click(gomock.Any(), "missing", gomock.Any()).
		Return(nil, apperrors.ErrTrackingTokenNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/track/missing/click", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "tracking token not found")
}

func (suite *TrackingHandlerTestSuite) TestSubmitFormEncoded() {
	suite.mockTrackingService.EXPECT().
		Submit(gomock.Any(), "tok-1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ service.TrackingRequest, form map[string]interface{}) (*service.LandingResult, error) {
			assert.Equal(suite.T(), "jane", form["username"])
			assert.Equal(suite.T(), "hunter2", form["password"])
			return &service.LandingResult{HTML: "<p>This was a phishing simulation.</p>"}, nil
		}).
		Times(1)

	body := url.Values{"username": {"jane"}, "password": {"hunter2"}}.Encode()
	req := httptest.NewRequest(http.MethodPost, "/track/tok-1/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "phishing simulation")
}

func (suite *TrackingHandlerTestSuite) TestSubmitJSON() {
	suite.mockTrackingService.EXPECT().
		Submit(gomock.Any(), "tok-1", gomock.Any(), map[string]interface{}{"email": "jane@acme.test"}).
		Return(&service.LandingResult{RedirectURL: "https://acme.test"}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/track/tok-1/submit", map[string]interface{}{"email": "jane@acme.test"})

	assert.Equal(suite.T(), http.StatusFound, recorder.Code)
}

func (suite *TrackingHandlerTestSuite) TestReport() {
	suite.mockTrackingService.EXPECT().
		Report(gomock.Any(), "tok-1", gomock.Any()).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/track/tok-1/report", nil)

	var response MessageResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "Thank you for reporting this email", response.Message)
}

func (suite *TrackingHandlerTestSuite) TestReportStorageFailure() {
	suite.mockTrackingService.EXPECT().
		Report(gomock.Any(), "tok-1", gomock.Any()).
		Return(errors.New("connection reset")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/track/tok-1/report", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to record report")
}

// TestTrackingHandlerTestSuite runs the test suite
func TestTrackingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TrackingHandlerTestSuite))
}
