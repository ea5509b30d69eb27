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
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-http-utils/headers"

	"d7y.io/studio/studio/service"
)

// Socket upgrades http requests to notification clients.
type Socket interface {
	ServeWS(w http.ResponseWriter, r *http.Request, projectIDs ...uint) error
}

type Handlers struct {
	service service.Service
	socket  Socket

	// uploadMaxSize bounds the dataset of an upload in bytes, zero is
	// unbounded.
	uploadMaxSize int64
}

// Option is a functional option for handlers.
type Option func(h *Handlers)

// WithUploadMaxSize rejects upload bodies larger than a dataset of n bytes
// before they are spooled.
func WithUploadMaxSize(n int64) Option {
	return func(h *Handlers) {
		h.uploadMaxSize = n
	}
}

func New(service service.Service, socket Socket, options ...Option) *Handlers {
	h := &Handlers{service: service, socket: socket}
	for _, opt := range options {
		opt(h)
	}

	return h
}

func (h *Handlers) setPaginationDefault(page, perPage *int) {
	if *page == 0 {
		*page = 1
	}

	if *perPage == 0 {
		*perPage = 10
	}
}

func (h *Handlers) setPaginationLinkHeader(ctx *gin.Context, page, perPage, totalCount int) {
	totalPage := (totalCount + perPage - 1) / perPage
	if totalPage == 0 {
		totalPage = 1
	}

	var links []string
	for _, rel := range []struct {
		name string
		page int
	}{
		{name: "prev", page: max(page-1, 1)},
		{name: "next", page: min(page+1, totalPage)},
		{name: "first", page: 1},
		{name: "last", page: totalPage},
	} {
		u := *ctx.Request.URL
		query := u.Query()
		query.Set("page", strconv.Itoa(rel.page))
		query.Set("per_page", strconv.Itoa(perPage))
		u.RawQuery = query.Encode()

		links = append(links, fmt.Sprintf("<%s>;rel=%s", u.String(), rel.name))
	}

	ctx.Header(headers.Link, strings.Join(links, ","))
}
