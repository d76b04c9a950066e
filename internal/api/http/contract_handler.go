package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/service"
)

type ContractHandler struct {
	contracts service.ContractService
	sync      service.SyncService
}

func NewContractHandler(contracts service.ContractService, sync service.SyncService) *ContractHandler {
	return &ContractHandler{contracts: contracts, sync: sync}
}

func pathID(r *http.Request, name string) (int32, bool) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id < 1 {
		return 0, false
	}
	return int32(id), true
}

// editMode reads the session-level toggle that unlocks term edits on
// admin-approved contracts.
func editMode(r *http.Request) bool {
	return r.URL.Query().Get("edit_mode") == "true" || r.Header.Get("X-Edit-Mode") == "true"
}

type contractResponse struct {
	Contract *domain.Contract     `json:"contract"`
	Checks   []domain.CheckRecord `json:"checks,omitempty"`
}

func (h *ContractHandler) Create(w http.ResponseWriter, r *http.Request) {
	var c domain.Contract
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	created, err := h.contracts.CreateContract(r.Context(), &c)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, contractResponse{Contract: created})
}

func (h *ContractHandler) CreateFromBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := pathID(r, "booking_id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid booking id"})
		return
	}

	created, err := h.contracts.CreateFromBooking(r.Context(), bookingID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, contractResponse{Contract: created})
}

func (h *ContractHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid contract id"})
		return
	}

	c, checks, err := h.contracts.GetContract(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contractResponse{Contract: c, Checks: checks})
}

func (h *ContractHandler) List(w http.ResponseWriter, r *http.Request) {
	status := domain.ContractStatus(r.URL.Query().Get("status"))
	page := queryInt32(r, "page", 1)
	pageSize := queryInt32(r, "page_size", 20)

	contracts, total, err := h.contracts.ListContracts(r.Context(), status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"contracts": contracts,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func queryInt32(r *http.Request, name string, fallback int32) int32 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v < 1 {
		return fallback
	}
	return int32(v)
}

func (h *ContractHandler) UpdateTerms(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid contract id"})
		return
	}

	var terms service.TermsUpdate
	if err := json.NewDecoder(r.Body).Decode(&terms); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	c, err := h.contracts.UpdateTerms(r.Context(), id, terms, editMode(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contractResponse{Contract: c})
}

func (h *ContractHandler) AutoCreateCheques(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid contract id"})
		return
	}

	checks, err := h.contracts.AutoCreateCheques(r.Context(), id, editMode(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"checks": checks})
}

func (h *ContractHandler) UpdateCheck(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid contract id"})
		return
	}
	position, ok := pathPosition(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid check position"})
		return
	}

	var upd service.CheckUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	checks, err := h.contracts.UpdateCheckRecord(r.Context(), id, position, upd, editMode(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"checks": checks})
}

// pathPosition accepts zero, unlike pathID.
func pathPosition(r *http.Request) (int32, bool) {
	raw, ok := mux.Vars(r)["position"]
	if !ok {
		return 0, false
	}
	pos, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || pos < 0 {
		return 0, false
	}
	return int32(pos), true
}

func (h *ContractHandler) Completeness(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid contract id"})
		return
	}

	gate, err := h.contracts.Completeness(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"complete":                gate.Complete(),
		"missing_tenant_fields":   gate.MissingTenantFields,
		"missing_landlord_fields": gate.MissingLandlordFields,
		"documents_approved":      gate.DocumentsApproved,
		"cheques_approved":        gate.ChequesApproved,
		"reasons":                 gate.Reasons(),
	})
}

func (h *ContractHandler) transition(w http.ResponseWriter, r *http.Request, fn func(r *http.Request, id int32) (*domain.Contract, error)) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid contract id"})
		return
	}

	c, err := fn(r, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contractResponse{Contract: c})
}

func (h *ContractHandler) AdminApprove(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(r *http.Request, id int32) (*domain.Contract, error) {
		return h.contracts.ApproveByAdmin(r.Context(), id)
	})
}

func (h *ContractHandler) TenantApprove(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(r *http.Request, id int32) (*domain.Contract, error) {
		return h.contracts.ApproveByTenant(r.Context(), id)
	})
}

func (h *ContractHandler) LandlordApprove(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(r *http.Request, id int32) (*domain.Contract, error) {
		return h.contracts.ApproveByLandlord(r.Context(), id)
	})
}

func (h *ContractHandler) FinalApprove(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(r *http.Request, id int32) (*domain.Contract, error) {
		return h.contracts.FinalApprove(r.Context(), id)
	})
}

func (h *ContractHandler) RevertToDraft(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(r *http.Request, id int32) (*domain.Contract, error) {
		return h.contracts.RevertToDraft(r.Context(), id)
	})
}

func (h *ContractHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(r *http.Request, id int32) (*domain.Contract, error) {
		return h.contracts.Cancel(r.Context(), id)
	})
}

type refreshPartyRequest struct {
	Party      domain.DocumentParty `json:"party"`
	Identifier string               `json:"identifier"`
}

func (h *ContractHandler) RefreshParty(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid contract id"})
		return
	}

	var req refreshPartyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Identifier == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "identifier is required"})
		return
	}

	c, err := h.sync.RefreshPartyFromDirectory(r.Context(), id, req.Party, req.Identifier)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contractResponse{Contract: c})
}
