package report

import (
	"context"
	"hotel/infras/otel"
	"hotel/internal/domains/report/model/dto"
	"hotel/internal/domains/report/service"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/booking-statistics", handler.BookingStatistics)
		routerGroup.Get("/revenue-statistics", handler.RevenueStatistics)
		routerGroup.Get("/occupancy-statistics", handler.OccupancyStatistics)

		routerGroup.Route("/export", func(exportGroup chi.Router) {
			exportGroup.Get("/booking-statistics", handler.ExportBookingStatistics)
			exportGroup.Get("/revenue-statistics", handler.ExportRevenueStatistics)
			exportGroup.Get("/occupancy-statistics", handler.ExportOccupancyStatistics)
		})
	})
}

func parseQuery(r *http.Request) (dto.ReportQuery, error) {
	query := r.URL.Query()

	req := dto.ReportQuery{
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
	}

	if hotelID := query.Get("hotel_id"); hotelID != "" {
		id, err := shared.ConvertStringToInt64(hotelID)
		if err != nil {
			return req, failure.BadRequestFromString("hotel_id must be a number")
		}

		req.HotelID = id
	}

	if err := validator.ValidateStruct(&req); err != nil {
		return req, err
	}

	return req, nil
}

func statistics[T any](handler *Handler, w http.ResponseWriter, r *http.Request, name string, fetch func(context.Context, dto.ReportQuery) ([]T, error)) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	req, err := parseQuery(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	rows, err := fetch(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("report", name).Msg("failed to build report")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rows)
}

func (handler *Handler) export(w http.ResponseWriter, r *http.Request, name string, render func(context.Context, dto.ReportQuery) (dto.ExportResponse, error)) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	req, err := parseQuery(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	file, err := render(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("report", name).Msg("failed to export report")

		response.WithError(w, err)

		return
	}

	if file.ArchiveURL != "" {
		w.Header().Set(constant.ResponseHeaderReportArchiveURL, file.ArchiveURL)
	}

	response.WithFile(w, file.FileName, constant.ContentTypeXLSX, file.Content)
}

// BookingStatistics
// @Summary Booking statistics per hotel
// @Description Orders created in the range, grouped by hotel, with booking and check-in rates.
// @Tags Report
// @Produce json
// @Param hotel_id query int false "Restrict to one hotel"
// @Param start_date query string true "First day (yyyy-MM-dd)"
// @Param end_date query string true "Last day (yyyy-MM-dd)"
// @Success 200 {object} response.Data[[]dto.BookingStatisticsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/booking-statistics [get]
// @Security BearerAuth
func (handler *Handler) BookingStatistics(w http.ResponseWriter, r *http.Request) {
	statistics(handler, w, r, "BookingStatistics", handler.service.BookingStatistics)
}

// RevenueStatistics
// @Summary Monthly revenue per hotel
// @Description Non-cancelled orders created in the range, grouped by hotel and month.
// @Tags Report
// @Produce json
// @Param hotel_id query int false "Restrict to one hotel"
// @Param start_date query string true "First day (yyyy-MM-dd)"
// @Param end_date query string true "Last day (yyyy-MM-dd)"
// @Success 200 {object} response.Data[[]dto.RevenueStatisticsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/revenue-statistics [get]
// @Security BearerAuth
func (handler *Handler) RevenueStatistics(w http.ResponseWriter, r *http.Request) {
	statistics(handler, w, r, "RevenueStatistics", handler.service.RevenueStatistics)
}

// OccupancyStatistics
// @Summary Daily occupancy per hotel
// @Description Checked-in and checked-out orders grouped by hotel and check-in date.
// @Tags Report
// @Produce json
// @Param hotel_id query int false "Restrict to one hotel"
// @Param start_date query string true "First day (yyyy-MM-dd)"
// @Param end_date query string true "Last day (yyyy-MM-dd)"
// @Success 200 {object} response.Data[[]dto.OccupancyStatisticsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/occupancy-statistics [get]
// @Security BearerAuth
func (handler *Handler) OccupancyStatistics(w http.ResponseWriter, r *http.Request) {
	statistics(handler, w, r, "OccupancyStatistics", handler.service.OccupancyStatistics)
}

// ExportBookingStatistics
// @Summary Export booking statistics
// @Tags Report
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param hotel_id query int false "Restrict to one hotel"
// @Param start_date query string true "First day (yyyy-MM-dd)"
// @Param end_date query string true "Last day (yyyy-MM-dd)"
// @Success 200 {file} file
// @Header 200 {string} X-Report-Archive-URL "Archived copy, when archiving is enabled"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/export/booking-statistics [get]
// @Security BearerAuth
func (handler *Handler) ExportBookingStatistics(w http.ResponseWriter, r *http.Request) {
	handler.export(w, r, "ExportBookingStatistics", handler.service.ExportBookingStatistics)
}

// ExportRevenueStatistics
// @Summary Export revenue statistics
// @Tags Report
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param hotel_id query int false "Restrict to one hotel"
// @Param start_date query string true "First day (yyyy-MM-dd)"
// @Param end_date query string true "Last day (yyyy-MM-dd)"
// @Success 200 {file} file
// @Header 200 {string} X-Report-Archive-URL "Archived copy, when archiving is enabled"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/export/revenue-statistics [get]
// @Security BearerAuth
func (handler *Handler) ExportRevenueStatistics(w http.ResponseWriter, r *http.Request) {
	handler.export(w, r, "ExportRevenueStatistics", handler.service.ExportRevenueStatistics)
}

// ExportOccupancyStatistics
// @Summary Export occupancy statistics
// @Tags Report
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param hotel_id query int false "Restrict to one hotel"
// @Param start_date query string true "First day (yyyy-MM-dd)"
// @Param end_date query string true "Last day (yyyy-MM-dd)"
// @Success 200 {file} file
// @Header 200 {string} X-Report-Archive-URL "Archived copy, when archiving is enabled"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/export/occupancy-statistics [get]
// @Security BearerAuth
func (handler *Handler) ExportOccupancyStatistics(w http.ResponseWriter, r *http.Request) {
	handler.export(w, r, "ExportOccupancyStatistics", handler.service.ExportOccupancyStatistics)
}
