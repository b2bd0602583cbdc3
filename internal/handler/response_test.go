package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andrew21-mch/crowdfunding-api/internal/logic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSuccessResponseEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SuccessResponse(c, http.StatusCreated, "活动创建成功", gin.H{"id": 1})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "活动创建成功", resp.Message)
	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.NotNil(t, resp.Data)
}

func TestHandleErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"校验错误", &logic.ValidationError{Message: "标题不能为空"}, http.StatusBadRequest},
		{"资源不存在", logic.ErrCampaignNotFound, http.StatusNotFound},
		{"凭据无效", logic.ErrInvalidCredentials, http.StatusUnauthorized},
		{"其他错误", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleError(c, tc.err)

			assert.Equal(t, tc.code, w.Code)

			var resp Response
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.code, resp.Code)
		})
	}
}
