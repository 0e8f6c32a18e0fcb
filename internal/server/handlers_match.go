package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/skill-matcher/internal/db"
	"github.com/jonathan/skill-matcher/internal/ingestion"
	"github.com/jonathan/skill-matcher/internal/matching"
	"github.com/jonathan/skill-matcher/internal/types"
)

// MatchRequest scores one candidate against one job.
type MatchRequest struct {
	Candidate types.Candidate       `json:"candidate" validate:"required"`
	Job       types.JobRequirements `json:"job" validate:"required"`
	Strategy  string                `json:"strategy,omitempty" validate:"omitempty,oneof=embedding taxonomy"`
	Persist   bool                  `json:"persist,omitempty"`
}

// MatchResponse wraps a computed match result, with the stored record ID when
// the result was persisted.
type MatchResponse struct {
	Result   types.MatchResult `json:"result"`
	Strategy string            `json:"strategy"`
	ResultID *uuid.UUID        `json:"result_id,omitempty"`
}

// RankRequest scores a batch of candidates against one job.
type RankRequest struct {
	Candidates []types.Candidate     `json:"candidates" validate:"required,min=1,dive"`
	Job        types.JobRequirements `json:"job" validate:"required"`
	Strategy   string                `json:"strategy,omitempty" validate:"omitempty,oneof=embedding taxonomy"`
	TopK       int                   `json:"top_k,omitempty" validate:"omitempty,min=1"`
	Scrub      bool                  `json:"scrub,omitempty"`
}

// RankResponse returns ranked candidates for a job.
type RankResponse struct {
	JobID      string                  `json:"job_id"`
	Strategy   string                  `json:"strategy"`
	Count      int                     `json:"count"`
	Candidates []types.RankedCandidate `json:"candidates"`
}

// IngestRequest fetches a job posting URL and extracts structured requirements.
type IngestRequest struct {
	URL        string `json:"url" validate:"required,url"`
	UseBrowser bool   `json:"use_browser,omitempty"`
}

// IngestResponse returns the extracted requirements and fetch metadata.
type IngestResponse struct {
	Requirements *types.JobRequirements `json:"requirements"`
	Metadata     *ingestion.Metadata    `json:"metadata"`
}

// selectMatcher resolves a strategy name to a configured matcher. An empty
// name picks the embedding strategy when an LLM backend is available,
// otherwise the taxonomy strategy.
func (s *Server) selectMatcher(strategy string) (matching.Matcher, string, error) {
	if strategy == "" {
		if s.llmClient != nil {
			strategy = StrategyEmbedding
		} else {
			strategy = StrategyTaxonomy
		}
	}
	matcher, ok := s.matchers[strategy]
	if !ok {
		return nil, "", &ErrUnknownStrategy{Strategy: strategy}
	}
	return matcher, strategy, nil
}

// decodeAndValidate decodes the request body into dst and runs struct validation.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			ve := &ErrValidation{Field: verrs[0].Field(), Message: verrs[0].Tag()}
			s.errorResponse(w, http.StatusBadRequest, ve.Error())
		} else {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
		}
		return false
	}
	return true
}

// handleMatch scores a single candidate against a job.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	matcher, strategy, err := s.selectMatcher(req.Strategy)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result := matcher.Score(r.Context(), req.Candidate, req.Job)

	resp := MatchResponse{Result: result, Strategy: strategy}
	if req.Persist {
		if s.db == nil {
			err := &ErrPersistenceDisabled{}
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		id, err := s.db.SaveMatchResult(r.Context(), strategy, result)
		if err != nil {
			log.Printf("Error saving match result: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "Failed to save match result")
			return
		}
		resp.ResultID = &id
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleRank scores a batch of candidates and returns them ordered best first.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req RankRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	matcher, strategy, err := s.selectMatcher(req.Strategy)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	ranked, err := matching.RankCandidates(r.Context(), matcher, req.Candidates, req.Job, matching.RankOptions{
		TopK:  req.TopK,
		Scrub: req.Scrub,
	})
	if err != nil {
		log.Printf("Error ranking candidates: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Ranking failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, RankResponse{
		JobID:      req.Job.ID,
		Strategy:   strategy,
		Count:      len(ranked),
		Candidates: ranked,
	})
}

// handleIngest fetches a job posting URL and extracts structured requirements.
func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	var req IngestRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	if s.llmClient == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Job ingestion requires an LLM backend; no API key configured")
		return
	}

	text, meta, err := ingestion.IngestFromURL(r.Context(), req.URL, req.UseBrowser, false)
	if err != nil {
		log.Printf("Error ingesting %s: %v", req.URL, err)
		s.errorResponse(w, http.StatusBadGateway, "Failed to fetch job posting: "+err.Error())
		return
	}

	requirements, err := ingestion.ExtractJobRequirements(r.Context(), s.llmClient, text)
	if err != nil {
		log.Printf("Error extracting requirements from %s: %v", req.URL, err)
		s.errorResponse(w, http.StatusBadGateway, "Failed to extract job requirements: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, IngestResponse{Requirements: requirements, Metadata: meta})
}

// handleListResults lists stored match results, optionally filtered.
func (s *Server) handleListResults(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrPersistenceDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	filters := db.MatchFilters{
		CandidateID: r.URL.Query().Get("candidate_id"),
		JobID:       r.URL.Query().Get("job_id"),
		Strategy:    r.URL.Query().Get("strategy"),
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		filters.Limit = limit
	}

	matches, err := s.db.ListMatchResults(r.Context(), filters)
	if err != nil {
		log.Printf("Error listing match results: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list match results")
		return
	}
	if matches == nil {
		matches = []db.StoredMatch{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"count":   len(matches),
		"results": matches,
	})
}

// handleGetResult retrieves one stored match result by ID.
func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrPersistenceDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid result ID")
		return
	}

	match, err := s.db.GetMatchResult(r.Context(), id)
	if err != nil {
		log.Printf("Error getting match result %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get match result")
		return
	}
	if match == nil {
		nf := &ErrResultNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(nf), nf.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, match)
}

// handleDeleteResult removes one stored match result by ID.
func (s *Server) handleDeleteResult(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrPersistenceDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid result ID")
		return
	}

	if err := s.db.DeleteMatchResult(r.Context(), id); err != nil {
		log.Printf("Error deleting match result %s: %v", id, err)
		nf := &ErrResultNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(nf), nf.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
