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

package router

import (
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/go-http-utils/headers"
	ginprometheus "github.com/mcuadros/go-gin-prometheus"

	logger "d7y.io/studio/internal/dflog"
	"d7y.io/studio/studio/config"
	"d7y.io/studio/studio/handlers"
	"d7y.io/studio/studio/middlewares"
	"d7y.io/studio/studio/service"
	"d7y.io/studio/studio/types"
)

const PrometheusSubsystemName = "studio_server"

func Init(cfg *config.Config, service service.Service, socket handlers.Socket) (*gin.Engine, error) {
	// Set mode.
	if !cfg.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := types.RegisterValidations(); err != nil {
		return nil, err
	}

	r := gin.New()
	h := handlers.New(service, socket, handlers.WithUploadMaxSize(cfg.Upload.MaxSize))

	// Prometheus metrics.
	p := ginprometheus.NewPrometheus(PrometheusSubsystemName)
	// Label by route template so project ids do not create new series.
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		if path := c.FullPath(); path != "" {
			return path
		}

		return c.Request.URL.Path
	}
	p.Use(r)

	// CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AddAllowHeaders(headers.Authorization)
	corsConfig.AddExposeHeaders(headers.Link, headers.ContentDisposition)

	// Middleware
	r.Use(gin.Recovery())
	r.Use(ginzap.Ginzap(logger.GinLogger.Desugar(), time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger.GinLogger.Desugar(), true))
	r.Use(middlewares.Error())
	r.Use(cors.New(corsConfig))

	// Router
	api := r.Group("/api")

	// Project
	ps := api.Group("/projects")
	ps.POST("", h.CreateProject)
	ps.GET("", h.GetProjects)
	ps.GET(":id", h.GetProject)
	ps.PUT(":id", h.UpdateProject)
	ps.POST(":id/data", h.UploadDataset)
	ps.POST(":id/data/read", h.ReadData)
	ps.GET(":id/jobs", h.GetJobs)

	// EDA
	ps.POST(":id/eda", h.StartEda)
	ps.GET(":id/eda", h.GetEdas)
	ps.GET(":id/edaprogress", h.GetEdaProgress)
	ps.POST(":id/edaprogress", h.ReportEdaProgress)
	ps.POST(":id/report", h.ReportProject)
	ps.POST(":id/eda/edagraph", h.EdaGraph)
	ps.GET(":id/eda/advedainfo", h.AdvancedEdaInfo)
	ps.POST(":id/report/trainmodel/multiunivariate", h.MultiUnivariate)

	es := api.Group("/eda")
	es.GET(":edaId/info", h.GetEda)
	es.GET(":edaId/edaSummary/download", h.DownloadEdaSummary)

	// Training
	ps.POST(":id/trainmodel", h.StartTraining)
	ps.GET(":id/trainmodel", h.ListModels)
	ps.POST(":id/trainmodel/correlation", h.GetCorrelation)
	ps.POST(":id/trainmodel/correlation/report", h.ReportCorrelation)
	ps.POST(":id/trainmodel/:modelId/progress", h.ReportTrainingProgress)
	ps.POST(":id/trainmodel/:modelId/done", h.ReportModelDone)

	// Flow
	ps.POST(":id/udd/report", h.ReportFlow)
	api.GET("/project/:projectId/udd/:uddId/execute", h.ExecuteFlow)

	us := api.Group("/udd")
	us.POST("", h.CreateFlow)
	us.GET("", h.GetFlows)
	us.GET(":uddId", h.GetFlow)
	us.PUT(":uddId", h.UpdateFlow)
	us.DELETE(":uddId", h.DestroyFlow)

	// Algorithm
	as := api.Group("/algorithms")
	as.GET("", h.GetAlgorithms)
	as.GET(":algoId/fields", h.GetAlgorithmFields)

	// Notification
	r.GET("/ws", h.ServeSocket)

	// Health Check
	r.GET("/healthy", h.GetHealth)

	return r, nil
}
