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
	"net/http"

	"github.com/VividCortex/mysqlerr"
	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"d7y.io/studio/internal/dferrors"
)

type ErrorResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"errors,omitempty"`
}

var statusByCode = map[dferrors.Code]int{
	dferrors.CodeValidation:        http.StatusBadRequest,
	dferrors.CodeNotFound:          http.StatusNotFound,
	dferrors.CodeConflict:          http.StatusConflict,
	dferrors.CodeWorkerUnavailable: http.StatusServiceUnavailable,
}

func Error() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		err := c.Errors.Last()
		if err == nil {
			return
		}

		// Bind error handler
		if err.IsType(gin.ErrorTypeBind) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Message: http.StatusText(http.StatusUnprocessableEntity),
				Error:   err.Error(),
			})
			c.Abort()
			return
		}

		// Studio error handler
		var dferr *dferrors.DfError
		if errors.As(err.Err, &dferr) {
			status, ok := statusByCode[dferr.Code]
			if !ok {
				status = http.StatusInternalServerError
			}

			c.JSON(status, ErrorResponse{
				Message: dferr.Message,
			})
			c.Abort()
			return
		}

		// Mysql error handler
		if mysqlErr, ok := errors.Cause(err.Err).(*mysql.MySQLError); ok && mysqlErr.Number == mysqlerr.ER_DUP_ENTRY {
			c.JSON(http.StatusConflict, ErrorResponse{
				Message: http.StatusText(http.StatusConflict),
			})
			c.Abort()
			return
		}

		// GORM error handler
		if errors.Is(err.Err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Message: http.StatusText(http.StatusNotFound),
			})
			c.Abort()
			return
		}

		// Unknown error
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: http.StatusText(http.StatusInternalServerError),
		})
		c.Abort()
	}
}
