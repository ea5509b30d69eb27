/*
 *     Copyright 2024 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package middlewares

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/VividCortex/mysqlerr"
	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"d7y.io/studio/internal/dferrors"
)

func mockErrorRouter(err error, typ gin.ErrorType) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Error())
	r.GET("/", func(ctx *gin.Context) {
		ctx.Error(err).SetType(typ) // nolint: errcheck
	})
	r.GET("/ok", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func TestMiddlewares_Error(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		typ    gin.ErrorType
		expect func(t *testing.T, code int, resp ErrorResponse)
	}{
		{
			name: "bind error",
			err:  fmt.Errorf("Key: 'CreateProjectRequest.Name' Error:Field validation for 'Name' failed on the 'required' tag"),
			typ:  gin.ErrorTypeBind,
			expect: func(t *testing.T, code int, resp ErrorResponse) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, code)
				assert.Contains(resp.Error, "required")
			},
		},
		{
			name: "validation error",
			err:  dferrors.New(dferrors.CodeValidation, "Please select features."),
			typ:  gin.ErrorTypePrivate,
			expect: func(t *testing.T, code int, resp ErrorResponse) {
				assert := assert.New(t)
				assert.Equal(http.StatusBadRequest, code)
				assert.Equal("Please select features.", resp.Message)
			},
		},
		{
			name: "wrapped not found error",
			err:  fmt.Errorf("find project: %w", dferrors.New(dferrors.CodeNotFound, "project 1 not found")),
			typ:  gin.ErrorTypePrivate,
			expect: func(t *testing.T, code int, resp ErrorResponse) {
				assert := assert.New(t)
				assert.Equal(http.StatusNotFound, code)
				assert.Equal("project 1 not found", resp.Message)
			},
		},
		{
			name: "conflict error",
			err:  dferrors.New(dferrors.CodeConflict, "project status Eda Started does not allow StartEda"),
			typ:  gin.ErrorTypePrivate,
			expect: func(t *testing.T, code int, resp ErrorResponse) {
				assert := assert.New(t)
				assert.Equal(http.StatusConflict, code)
			},
		},
		{
			name: "worker unavailable error",
			err:  dferrors.New(dferrors.CodeWorkerUnavailable, "dispatch to compute worker failed"),
			typ:  gin.ErrorTypePrivate,
			expect: func(t *testing.T, code int, resp ErrorResponse) {
				assert := assert.New(t)
				assert.Equal(http.StatusServiceUnavailable, code)
			},
		},
		{
			name: "duplicate entry",
			err:  &mysql.MySQLError{Number: mysqlerr.ER_DUP_ENTRY, Message: "Duplicate entry"},
			typ:  gin.ErrorTypePrivate,
			expect: func(t *testing.T, code int, resp ErrorResponse) {
				assert := assert.New(t)
				assert.Equal(http.StatusConflict, code)
				assert.Equal(http.StatusText(http.StatusConflict), resp.Message)
			},
		},
		{
			name: "record not found",
			err:  fmt.Errorf("get flow: %w", gorm.ErrRecordNotFound),
			typ:  gin.ErrorTypePrivate,
			expect: func(t *testing.T, code int, resp ErrorResponse) {
				assert := assert.New(t)
				assert.Equal(http.StatusNotFound, code)
			},
		},
		{
			name: "unknown error",
			err:  fmt.Errorf("connection refused"),
			typ:  gin.ErrorTypePrivate,
			expect: func(t *testing.T, code int, resp ErrorResponse) {
				assert := assert.New(t)
				assert.Equal(http.StatusInternalServerError, code)
				assert.Equal(http.StatusText(http.StatusInternalServerError), resp.Message)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			mockErrorRouter(tc.err, tc.typ).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			var resp ErrorResponse
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			tc.expect(t, w.Code, resp)
		})
	}
}

func TestMiddlewares_ErrorPassThrough(t *testing.T) {
	w := httptest.NewRecorder()
	mockErrorRouter(nil, gin.ErrorTypePrivate).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
