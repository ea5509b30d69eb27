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

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	logger "d7y.io/studio/internal/dflog"
	"d7y.io/studio/studio/types"
)

// ServeSocket upgrades the request to the notification channel. Each
// projectId query parameter joins that project at connection time.
func (h *Handlers) ServeSocket(ctx *gin.Context) {
	var query types.SocketQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	// The upgrader has already answered the request when it fails.
	if err := h.socket.ServeWS(ctx.Writer, ctx.Request, query.ProjectIDs...); err != nil {
		logger.SocketLogger.Warnf("upgrade %s failed: %s", ctx.ClientIP(), err.Error())
	}
}
