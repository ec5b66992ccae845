// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-proxy-keeper/internal/logger"
	"github.com/MKhiriev/go-proxy-keeper/internal/service"
	"github.com/MKhiriev/go-proxy-keeper/internal/store"
	"github.com/MKhiriev/go-proxy-keeper/internal/utils"
	"github.com/MKhiriev/go-proxy-keeper/models"
	"github.com/go-chi/chi/v5"
)

// listJobs writes every pending job request as a JSON array.
func (h *Handler) listJobs(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	requests, err := h.services.SyncJobScheduler.Pending(r.Context())
	if err != nil {
		log.Err(err).Msg("failed to list pending jobs")
		writeError(w, err)
		return
	}
	if requests == nil {
		requests = []models.SyncJobRequest{}
	}

	utils.WriteJSON(w, requests, http.StatusOK)
}

// scheduleAclSync registers an ACL sync for the route in the path and
// responds 201 with the job handle.
func (h *Handler) scheduleAclSync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	route := chi.URLParam(r, "route")

	handle, err := h.services.SyncJobScheduler.Schedule(r.Context(), route)
	if err != nil {
		log.Err(err).Str("route", route).Msg("failed to schedule acl sync")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.ScheduleResponse{Handle: handle}, http.StatusCreated)
}

// runAclSync runs the ACL sync job for the route right away, ignoring the
// window and the constraints, and reports the outcome.
func (h *Handler) runAclSync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	route := chi.URLParam(r, "route")

	if err := store.ValidateRoute(route); err != nil {
		writeError(w, fmt.Errorf("%w: %w", service.ErrInvalidRoute, err))
		return
	}

	outcome, err := h.services.JobRunners.Run(r.Context(), service.AclSyncJobKind, route)
	if err != nil {
		log.Err(err).Str("route", route).Msg("failed to run acl sync")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.RunResponse{Route: route, Outcome: outcome}, http.StatusOK)
}

// cancelJob removes the pending job request named by handle.
func (h *Handler) cancelJob(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	handle := chi.URLParam(r, "handle")

	if err := h.services.SyncJobScheduler.Cancel(r.Context(), handle); err != nil {
		log.Err(err).Str("handle", handle).Msg("failed to cancel job")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
