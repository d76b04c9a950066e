package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"propdesk-backend/internal/security"
)

// NewRouter wires the versioned API. All routes sit behind the token
// middleware; back-office routes additionally reject document-upload
// tokens.
func NewRouter(
	contracts *ContractHandler,
	images *ChequeImageHandler,
	notifications *NotificationHandler,
	tokens security.TokenManager,
) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(tokens))

	api.HandleFunc("/contracts", requireAccess(contracts.Create)).Methods(http.MethodPost)
	api.HandleFunc("/contracts", requireAccess(contracts.List)).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{booking_id:[0-9]+}/contract", requireAccess(contracts.CreateFromBooking)).Methods(http.MethodPost)
	api.HandleFunc("/contracts/{id:[0-9]+}", requireAccess(contracts.Get)).Methods(http.MethodGet)
	api.HandleFunc("/contracts/{id:[0-9]+}/terms", requireAccess(contracts.UpdateTerms)).Methods(http.MethodPut)
	api.HandleFunc("/contracts/{id:[0-9]+}/checks/auto-create", requireAccess(contracts.AutoCreateCheques)).Methods(http.MethodPost)
	api.HandleFunc("/contracts/{id:[0-9]+}/checks/{position:[0-9]+}", requireAccess(contracts.UpdateCheck)).Methods(http.MethodPut)
	api.HandleFunc("/contracts/{id:[0-9]+}/completeness", requireAccess(contracts.Completeness)).Methods(http.MethodGet)
	api.HandleFunc("/contracts/{id:[0-9]+}/refresh-party", requireAccess(contracts.RefreshParty)).Methods(http.MethodPost)

	api.HandleFunc("/contracts/{id:[0-9]+}/approve/admin", requireAccess(contracts.AdminApprove)).Methods(http.MethodPost)
	api.HandleFunc("/contracts/{id:[0-9]+}/approve/tenant", requireAccess(contracts.TenantApprove)).Methods(http.MethodPost)
	api.HandleFunc("/contracts/{id:[0-9]+}/approve/landlord", requireAccess(contracts.LandlordApprove)).Methods(http.MethodPost)
	api.HandleFunc("/contracts/{id:[0-9]+}/approve/final", requireAccess(contracts.FinalApprove)).Methods(http.MethodPost)
	api.HandleFunc("/contracts/{id:[0-9]+}/revert", requireAccess(contracts.RevertToDraft)).Methods(http.MethodPost)
	api.HandleFunc("/contracts/{id:[0-9]+}/cancel", requireAccess(contracts.Cancel)).Methods(http.MethodPost)

	api.HandleFunc("/contracts/{id:[0-9]+}/notifications", requireAccess(notifications.ListByContract)).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id:[0-9]+}/read", requireAccess(notifications.MarkAsRead)).Methods(http.MethodPost)

	// Image upload accepts both access tokens and tenant document-upload
	// tokens, so no requireAccess here.
	api.HandleFunc("/contracts/{id:[0-9]+}/checks/{position:[0-9]+}/image", images.Upload).Methods(http.MethodPut)
	api.HandleFunc("/files/{key:.+}", images.Download).Methods(http.MethodGet)

	return r
}
