package notification

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/estate-crm/internal/api/middleware"
	"github.com/aliskhannn/estate-crm/internal/apperr"
	"github.com/aliskhannn/estate-crm/internal/config"
	mocks "github.com/aliskhannn/estate-crm/internal/mocks/api/handlers/notification"
	"github.com/aliskhannn/estate-crm/internal/model"
	notifrepo "github.com/aliskhannn/estate-crm/internal/repository/notification"
)

var userID = uuid.New()

func setupHandler(t *testing.T) (*Handler, *mocks.MocknotificationService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMocknotificationService(ctrl)
	cfg := &config.Config{Roster: config.Roster{DefaultLanguage: "en"}}
	return NewHandler(mockService, cfg), mockService
}

func testContext(method, target string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, nil)
	middleware.SetUserID(c, userID)
	return c, w
}

func TestHandler_List_Success(t *testing.T) {
	handler, mockService := setupHandler(t)
	c, w := testContext(http.MethodGet, "/api/notifications?limit=20")

	mockService.EXPECT().
		ListForUser(gomock.Any(), userID, 20).
		Return([]model.Notification{{ID: uuid.New(), Title: "Delayed client"}}, nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), "Delayed client")
}

func TestHandler_List_InvalidLimit(t *testing.T) {
	handler, _ := setupHandler(t)
	c, w := testContext(http.MethodGet, "/api/notifications?limit=0")

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_UnreadCount(t *testing.T) {
	handler, mockService := setupHandler(t)
	c, w := testContext(http.MethodGet, "/api/notifications/unread-count")

	mockService.EXPECT().UnreadCount(gomock.Any(), userID).Return(3, nil)

	handler.UnreadCount(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), `"unread":3`)
}

func TestHandler_MarkRead_Success(t *testing.T) {
	handler, mockService := setupHandler(t)
	id := uuid.New()
	c, w := testContext(http.MethodPatch, "/api/notifications/"+id.String()+"/read")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().MarkRead(gomock.Any(), userID, id).Return(nil)

	handler.MarkRead(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_MarkRead_NotFound(t *testing.T) {
	handler, mockService := setupHandler(t)
	id := uuid.New()
	c, w := testContext(http.MethodPatch, "/api/notifications/"+id.String()+"/read")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().MarkRead(gomock.Any(), userID, id).
		Return(apperr.New(apperr.KindNotFound, "mark notification read", notifrepo.ErrNotificationNotFound))

	handler.MarkRead(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_Delete_InvalidID(t *testing.T) {
	handler, _ := setupHandler(t)
	c, w := testContext(http.MethodDelete, "/api/notifications/not-a-uuid")
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	handler.Delete(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Delete_Backend(t *testing.T) {
	handler, mockService := setupHandler(t)
	id := uuid.New()
	c, w := testContext(http.MethodDelete, "/api/notifications/"+id.String())
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().Delete(gomock.Any(), userID, id).
		Return(apperr.New(apperr.KindBackend, "delete notification", assert.AnError))

	handler.Delete(c)

	assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
