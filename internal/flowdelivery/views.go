package flowdelivery

import (
	"time"

	"github.com/go-petr/pet-transfer/internal/domain"
	"github.com/go-petr/pet-transfer/internal/flowservice"
	"github.com/go-petr/pet-transfer/internal/sessionstore"
	"github.com/go-petr/pet-transfer/internal/stepmachine"
	"github.com/go-petr/pet-transfer/pkg/web"
)

type callView struct {
	Busy  bool   `json:"busy"`
	Error string `json:"error,omitempty"`
}

func newCallView(c sessionstore.CallState) callView {
	v := callView{Busy: c.Busy}
	if c.Err != nil {
		v.Error = web.GetErrorMsg(c.Err)
	}

	return v
}

type stateView struct {
	Busy             bool                     `json:"busy"`
	Recipient        *domain.Recipient        `json:"recipient,omitempty"`
	TransferResponse *domain.TransferResponse `json:"transfer_response,omitempty"`
	PaymentMethod    *domain.PaymentMethod    `json:"payment_method,omitempty"`
	Calls            map[string]callView      `json:"calls"`
}

func newStateView(st sessionstore.State) stateView {
	return stateView{
		Busy:             st.Busy(),
		Recipient:        st.Recipient(),
		TransferResponse: st.TransferResponse,
		PaymentMethod:    st.PaymentMethod,
		Calls: map[string]callView{
			"searchRecipient":   newCallView(st.SearchRecipient.CallState),
			"initTransfer":      newCallView(st.InitTransfer),
			"authorizeTransfer": newCallView(st.AuthorizeTransfer),
			"resendOtp":         newCallView(st.ResendOtp),
			"contacts":          newCallView(st.Contacts.CallState),
			"addContact":        newCallView(st.AddContact),
			"paymentMethods":    newCallView(st.PaymentMethods.CallState),
			"eBanks":            newCallView(st.EBanks.CallState),
		},
	}
}

type sessionView struct {
	ID        string                `json:"id"`
	UserID    string                `json:"user_id"`
	CreatedAt time.Time             `json:"created_at"`
	ExpiresAt time.Time             `json:"expires_at"`
	State     stateView             `json:"state"`
	Flow      *stepmachine.Snapshot `json:"flow,omitempty"`
}

func newSessionView(v flowservice.View) sessionView {
	return sessionView{
		ID:        v.Session.ID.String(),
		UserID:    v.Session.UserID,
		CreatedAt: v.Session.CreatedAt,
		ExpiresAt: v.Session.ExpiresAt,
		State:     newStateView(v.State),
		Flow:      v.Flow,
	}
}
