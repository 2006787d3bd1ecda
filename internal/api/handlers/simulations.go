package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"freight-dispatch-service/internal/api/dto"
	"freight-dispatch-service/internal/domain"
	"freight-dispatch-service/internal/services"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang/glog"
)

// SimulationService is the part of services.Simulator the handlers need.
type SimulationService interface {
	RunSimulation(ctx context.Context, req services.RunSimulationRequest) (*domain.SimulationRun, error)
	GetRun(ctx context.Context, runID string) (*domain.SimulationRun, error)
}

const maxBodyBytes = 1 << 20

type SimulationHandler struct {
	Service SimulationService
}

// Run schedules a network and returns the event log.
// The body is optional; without one the stored network is used.
func (h *SimulationHandler) Run(c *gin.Context) {
	var svcReq services.RunSimulationRequest

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()

	var req dto.SimulationRequest
	switch err := dec.Decode(&req); {
	case errors.Is(err, io.EOF):
		// empty body: use the stored network
	case err != nil:
		writeError(c, http.StatusBadRequest, "invalid json body")
		return
	default:
		if err := dec.Decode(&struct{}{}); err != io.EOF {
			writeError(c, http.StatusBadRequest, "body must contain only one JSON object")
			return
		}
		desc := toNetwork(req)
		svcReq.Network = &desc
	}

	run, err := h.Service.RunSimulation(c.Request.Context(), svcReq)
	if err != nil {
		writeServiceError(c, "run simulation", err)
		return
	}

	writeJSON(c, http.StatusOK, toResponse(run))
}

// Get returns a stored run by id.
func (h *SimulationHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing run id")
		return
	}

	run, err := h.Service.GetRun(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, "get run", err)
		return
	}

	writeJSON(c, http.StatusOK, toResponse(run))
}

func writeServiceError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrUnknownLocation),
		errors.Is(err, domain.ErrDuplicateID):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrRunNotFound):
		writeError(c, http.StatusNotFound, "simulation run not found")
	default:
		glog.Errorf("%s failed: %v", op, err)
		writeError(c, http.StatusInternalServerError, "internal server error")
	}
}

func toNetwork(req dto.SimulationRequest) domain.NetworkDescription {
	desc := domain.NetworkDescription{Locations: req.Locations}
	for _, r := range req.Routes {
		desc.Routes = append(desc.Routes, domain.RouteSpec{
			RouteID:         r.RouteID,
			LocationA:       r.LocationA,
			LocationB:       r.LocationB,
			DurationMinutes: r.DurationMinutes,
		})
	}
	for _, cr := range req.Carriers {
		desc.Carriers = append(desc.Carriers, domain.CarrierSpec{
			CarrierID:     cr.CarrierID,
			Capacity:      cr.Capacity,
			StartLocation: cr.StartLocation,
		})
	}
	for _, p := range req.Packages {
		desc.Packages = append(desc.Packages, domain.PackageSpec{
			PackageID:   p.PackageID,
			Weight:      p.Weight,
			Origin:      p.Origin,
			Destination: p.Destination,
		})
	}
	return desc
}

func toResponse(run *domain.SimulationRun) dto.SimulationResponse {
	res := dto.SimulationResponse{
		RunID:       run.RunID,
		Fingerprint: run.Fingerprint,
		CreatedAt:   run.CreatedAt,
		Events:      make([]dto.EventResponse, 0, len(run.Events)),
		Carriers:    make([]dto.CarrierSummaryResponse, 0, len(run.Carriers)),
		Stranded:    make([]dto.StrandedResponse, 0, len(run.Stranded)),
	}
	for _, e := range run.Events {
		res.Events = append(res.Events, dto.EventResponse{
			Timestamp: e.Timestamp,
			CarrierID: e.CarrierID,
			From:      string(e.From),
			Loaded:    ids(e.Loaded),
			To:        string(e.To),
			Unloaded:  ids(e.Unloaded),
		})
	}
	for _, cs := range run.Carriers {
		res.Carriers = append(res.Carriers, dto.CarrierSummaryResponse{
			CarrierID: cs.CarrierID,
			Location:  string(cs.Location),
			Time:      cs.Time,
			Delivered: ids(cs.Delivered),
		})
	}
	for _, s := range run.Stranded {
		res.Stranded = append(res.Stranded, dto.StrandedResponse{
			PackageID: s.PackageID,
			Location:  string(s.Location),
			State:     s.State.String(),
		})
	}
	return res
}

func ids(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
