package sessionstore

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-transfer/internal/domain"
)

type recorder struct {
	mu     sync.Mutex
	events []EventKind
}

func (r *recorder) listen(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, ev.Kind)
}

func (r *recorder) count(kind EventKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0

	for _, k := range r.events {
		if k == kind {
			n++
		}
	}

	return n
}

func TestSearchRecipient(t *testing.T) {
	self := domain.Recipient{UserID: "self", DisplayName: "Me", PaymentReference: "ref-self", AccountNumber: "001"}
	other := domain.Recipient{UserID: "u2", DisplayName: "Maria", PaymentReference: "ref-2", AccountNumber: "002"}

	testCases := []struct {
		name          string
		mobile        string
		account       string
		buildStubs    func(gw *MockGateway)
		wantRecipient *domain.Recipient
		wantKind      error
		wantMsg       string
	}{
		{
			name:   "SelfMobile",
			mobile: "09171234567",
			buildStubs: func(gw *MockGateway) {
				gw.EXPECT().SearchRecipient(gomock.Any(), gomock.Eq("09171234567"), gomock.Eq("")).
					Times(1).
					Return([]domain.Recipient{self}, nil)
			},
			wantKind: domain.ErrDomainRejected,
			wantMsg:  "You can't place your own mobile number. Please try other account number.",
		},
		{
			name:    "SelfAccount",
			account: "001",
			buildStubs: func(gw *MockGateway) {
				gw.EXPECT().SearchRecipient(gomock.Any(), gomock.Eq(""), gomock.Eq("001")).
					Times(1).
					Return([]domain.Recipient{self}, nil)
			},
			wantKind: domain.ErrDomainRejected,
			wantMsg:  "You can't place your own account number. Please try other account number.",
		},
		{
			name:   "NotFoundMobile",
			mobile: "09170000000",
			buildStubs: func(gw *MockGateway) {
				gw.EXPECT().SearchRecipient(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(nil, domain.ErrNotFound)
			},
			wantKind: domain.ErrNotFound,
			wantMsg:  "Mobile number doesn't exist. Please try other mobile number for you to proceed.",
		},
		{
			name:    "EmptyResultAccount",
			account: "999",
			buildStubs: func(gw *MockGateway) {
				gw.EXPECT().SearchRecipient(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return([]domain.Recipient{}, nil)
			},
			wantKind: domain.ErrNotFound,
			wantMsg:  "Account number doesn't exist. Please try other account number for you to proceed.",
		},
		{
			name:   "Transport",
			mobile: "09171234567",
			buildStubs: func(gw *MockGateway) {
				gw.EXPECT().SearchRecipient(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(nil, domain.ErrTransport)
			},
			wantKind: domain.ErrTransport,
			wantMsg:  "We're having difficulty trying to connect to our server. Please try again",
		},
		{
			name:   "OK",
			mobile: "09179876543",
			buildStubs: func(gw *MockGateway) {
				gw.EXPECT().SearchRecipient(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return([]domain.Recipient{other, self}, nil)
			},
			wantRecipient: &other,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			gw := NewMockGateway(ctrl)
			tc.buildStubs(gw)

			store := New(gw)
			rec := &recorder{}
			store.Subscribe(rec.listen, EventRecipientFound)

			store.SearchRecipient(context.Background(), "self", tc.mobile, tc.account)

			got := store.State().SearchRecipient
			require.False(t, got.Busy)

			if tc.wantRecipient != nil {
				require.NoError(t, got.Err)
				require.Equal(t, tc.wantRecipient, got.Result)
				require.Equal(t, 1, rec.count(EventRecipientFound))

				return
			}

			require.Nil(t, got.Result)
			require.Zero(t, rec.count(EventRecipientFound))
			require.EqualError(t, got.Err, tc.wantMsg)
			require.ErrorIs(t, got.Err, tc.wantKind)
		})
	}
}

func TestSearchRecipientBusyClearsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := NewMockGateway(ctrl)
	gw.EXPECT().SearchRecipient(gomock.Any(), gomock.Any(), gomock.Any()).Times(1).Return(nil, domain.ErrTransport)

	store := New(gw)
	store.SearchRecipient(context.Background(), "self", "0917", "")
	require.Error(t, store.State().SearchRecipient.Err)

	var seen []CallState

	store.Subscribe(func(ev Event) {
		seen = append(seen, ev.State.SearchRecipient.CallState)
	}, EventStateChanged)

	gw.EXPECT().SearchRecipient(gomock.Any(), gomock.Any(), gomock.Any()).
		Times(1).
		Return([]domain.Recipient{{UserID: "u2"}}, nil)

	store.SearchRecipient(context.Background(), "self", "0918", "")

	require.Equal(t, []CallState{{Busy: true}, {}}, seen)

	store.ClearRecipient()
	require.Nil(t, store.State().Recipient())
}

func TestInitTransfer(t *testing.T) {
	provider := &domain.PaymentProvider{Name: domain.ProviderPesonet, Code: "PSN-BDO", IsActive: true, IsDefault: true}

	req := domain.TransferRequest{
		Amount:            decimal.NewFromInt(500),
		Currency:          "PHP",
		DebtorAccountID:   "acc-1",
		CreditorAccountID: "001122",
		CreditorName:      "Juan",
		Provider:          provider,
		Purpose:           domain.PurposePayment,
		Note:              "rent",
	}

	wantArg := domain.InitTransferParams{
		Provider: domain.ProviderPesonet,
		Amount:   decimal.NewFromInt(500),
		Currency: "PHP",
		Debtor:   domain.AccountRef{AccountID: "acc-1", SchemeName: "UD.Scheme"},
		Creditor: domain.AccountRef{AccountID: "001122", SchemeName: "PESONET.Scheme", Name: "Juan"},
		BankCode: "PSN-BDO",
		Purpose:  domain.PurposePayment,
		Note:     "rent",
	}

	t.Run("OK", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gw := NewMockGateway(ctrl)
		gw.EXPECT().SchemeFor(domain.ProviderUD).AnyTimes().Return("UD.Scheme")
		gw.EXPECT().SchemeFor(domain.ProviderPesonet).AnyTimes().Return("PESONET.Scheme")
		gw.EXPECT().
			InitTransfer(gomock.Any(), gomock.Any()).
			Times(2).
			DoAndReturn(func(_ context.Context, arg domain.InitTransferParams) (domain.TransferResponse, error) {
				if diff := cmp.Diff(wantArg, arg); diff != "" {
					t.Errorf("InitTransfer received unexpected params: %s", diff)
				}

				return domain.TransferResponse{TransferID: "pay-" + arg.Note, Status: domain.StatusPending}, nil
			})

		store := New(gw)
		rec := &recorder{}
		store.Subscribe(rec.listen, EventTransferResponseChanged)

		store.InitTransfer(context.Background(), req)
		require.Equal(t, "pay-rent", store.State().TransferID())

		first := store.State().TransferResponse

		store.InitTransfer(context.Background(), req)
		require.Equal(t, 2, rec.count(EventTransferResponseChanged))
		require.NotSame(t, first, store.State().TransferResponse)
	})

	t.Run("RawError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rawErr := errors.New("payments: 422")

		gw := NewMockGateway(ctrl)
		gw.EXPECT().SchemeFor(gomock.Any()).AnyTimes().Return("UD.Scheme")
		gw.EXPECT().InitTransfer(gomock.Any(), gomock.Any()).Times(1).Return(domain.TransferResponse{}, rawErr)

		store := New(gw)
		store.InitTransfer(context.Background(), domain.TransferRequest{Amount: decimal.NewFromInt(1)})

		got := store.State()
		require.Same(t, rawErr, got.InitTransfer.Err)
		require.Nil(t, got.TransferResponse)
	})
}

func initiated(t *testing.T, gw *MockGateway, transferID string) *Store {
	t.Helper()

	gw.EXPECT().SchemeFor(gomock.Any()).AnyTimes().Return("UD.Scheme")
	gw.EXPECT().InitTransfer(gomock.Any(), gomock.Any()).
		Times(1).
		Return(domain.TransferResponse{TransferID: transferID, Status: "AwaitingAuthorisation", TransactionDate: "d0"}, nil)

	store := New(gw)
	store.InitTransfer(context.Background(), domain.TransferRequest{Amount: decimal.NewFromInt(100)})
	require.Equal(t, transferID, store.State().TransferID())

	return store
}

func TestAuthorizeWithoutTransfer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := NewMockGateway(ctrl)
	gw.EXPECT().AuthorizeTransfer(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	gw.EXPECT().ResendOtp(gomock.Any(), gomock.Any()).Times(0)

	store := New(gw)
	rec := &recorder{}
	store.Subscribe(rec.listen)

	store.AuthorizeTransfer(context.Background(), "000000")
	store.ResendOtp(context.Background())

	got := store.State()
	require.ErrorIs(t, got.AuthorizeTransfer.Err, domain.ErrNoActivePayment)
	require.ErrorIs(t, got.ResendOtp.Err, domain.ErrNoActivePayment)
	require.Zero(t, rec.count(EventAuthorizeStarted))
	require.Equal(t, 1, rec.count(EventAuthorizeFailed))
}

func TestAuthorizePreservesTransferID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := NewMockGateway(ctrl)
	store := initiated(t, gw, "pay-1")

	gw.EXPECT().
		AuthorizeTransfer(gomock.Any(), gomock.Eq("pay-1"), gomock.Eq("123456")).
		Times(1).
		Return(domain.Authorization{Status: domain.StatusAcceptedSettlementInProcess, TransactionDate: "d1", ReferenceNo: "REF-1"}, nil)

	rec := &recorder{}
	store.Subscribe(rec.listen, EventAuthorizeStarted, EventTransferResponseChanged)

	var busyDuringStart bool

	store.Subscribe(func(ev Event) {
		busyDuringStart = ev.State.AuthorizeTransfer.Busy
	}, EventAuthorizeStarted)

	store.AuthorizeTransfer(context.Background(), "123456")

	require.True(t, busyDuringStart)
	require.Equal(t, 1, rec.count(EventAuthorizeStarted))
	require.Equal(t, 1, rec.count(EventTransferResponseChanged))
	require.Equal(t, &domain.TransferResponse{
		TransferID:      "pay-1",
		Status:          domain.StatusAcceptedSettlementInProcess,
		TransactionDate: "d1",
		ReferenceNo:     "REF-1",
	}, store.State().TransferResponse)
	require.False(t, store.State().AuthorizeTransfer.Busy)
}

func TestAuthorizeStaleResultDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := NewMockGateway(ctrl)
	store := initiated(t, gw, "pay-1")

	gw.EXPECT().
		AuthorizeTransfer(gomock.Any(), gomock.Eq("pay-1"), gomock.Any()).
		Times(1).
		DoAndReturn(func(context.Context, string, string) (domain.Authorization, error) {
			store.ClearTransferResponse()
			return domain.Authorization{Status: domain.StatusPending}, nil
		})

	store.AuthorizeTransfer(context.Background(), "123456")

	got := store.State()
	require.Nil(t, got.TransferResponse)
	require.Equal(t, CallState{}, got.AuthorizeTransfer)
}

func TestStaleAuthorizeKeepsNewerCallBusy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := NewMockGateway(ctrl)
	store := initiated(t, gw, "pay-1")

	gw.EXPECT().InitTransfer(gomock.Any(), gomock.Any()).
		Times(1).
		Return(domain.TransferResponse{TransferID: "pay-2", Status: "AwaitingAuthorisation"}, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	gw.EXPECT().
		AuthorizeTransfer(gomock.Any(), gomock.Eq("pay-2"), gomock.Any()).
		Times(1).
		DoAndReturn(func(context.Context, string, string) (domain.Authorization, error) {
			close(started)
			<-release

			return domain.Authorization{Status: domain.StatusPending, ReferenceNo: "REF-2"}, nil
		})

	gw.EXPECT().
		AuthorizeTransfer(gomock.Any(), gomock.Eq("pay-1"), gomock.Any()).
		Times(1).
		DoAndReturn(func(context.Context, string, string) (domain.Authorization, error) {
			store.InitTransfer(context.Background(), domain.TransferRequest{Amount: decimal.NewFromInt(100)})

			go func() {
				defer close(done)
				store.AuthorizeTransfer(context.Background(), "222222")
			}()
			<-started

			return domain.Authorization{}, errors.New("otp expired")
		})

	store.AuthorizeTransfer(context.Background(), "111111")

	got := store.State()
	require.Equal(t, "pay-2", got.TransferID())
	require.Equal(t, CallState{Busy: true}, got.AuthorizeTransfer)

	close(release)
	<-done

	got = store.State()
	require.Equal(t, CallState{}, got.AuthorizeTransfer)
	require.Equal(t, "REF-2", got.TransferResponse.ReferenceNo)
}

func TestStaleResendKeepsNewerCallBusy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := NewMockGateway(ctrl)
	store := initiated(t, gw, "pay-1")

	gw.EXPECT().InitTransfer(gomock.Any(), gomock.Any()).
		Times(1).
		Return(domain.TransferResponse{TransferID: "pay-2", Status: "AwaitingAuthorisation"}, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	gw.EXPECT().ResendOtp(gomock.Any(), gomock.Eq("pay-2")).Times(1).
		DoAndReturn(func(context.Context, string) error {
			close(started)
			<-release

			return nil
		})

	gw.EXPECT().ResendOtp(gomock.Any(), gomock.Eq("pay-1")).Times(1).
		DoAndReturn(func(context.Context, string) error {
			store.InitTransfer(context.Background(), domain.TransferRequest{Amount: decimal.NewFromInt(100)})

			go func() {
				defer close(done)
				store.ResendOtp(context.Background())
			}()
			<-started

			return nil
		})

	rec := &recorder{}
	store.Subscribe(rec.listen, EventOtpSent)

	store.ResendOtp(context.Background())

	require.Equal(t, CallState{Busy: true}, store.State().ResendOtp)
	require.Equal(t, 0, rec.count(EventOtpSent))

	close(release)
	<-done

	require.Equal(t, CallState{}, store.State().ResendOtp)
	require.Equal(t, 1, rec.count(EventOtpSent))
}

func TestAuthorizeFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := NewMockGateway(ctrl)
	store := initiated(t, gw, "pay-1")

	authErr := errors.New("invalid otp")
	gw.EXPECT().AuthorizeTransfer(gomock.Any(), gomock.Any(), gomock.Any()).Times(1).Return(domain.Authorization{}, authErr)

	rec := &recorder{}
	store.Subscribe(rec.listen, EventAuthorizeFailed)

	store.AuthorizeTransfer(context.Background(), "111111")

	got := store.State()
	require.Same(t, authErr, got.AuthorizeTransfer.Err)
	require.Equal(t, 1, rec.count(EventAuthorizeFailed))
	require.Equal(t, "AwaitingAuthorisation", got.TransferResponse.Status)
}

func TestResendOtpEmitsOncePerCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := NewMockGateway(ctrl)
	store := initiated(t, gw, "pay-1")

	gw.EXPECT().ResendOtp(gomock.Any(), gomock.Eq("pay-1")).Times(3).Return(nil)

	rec := &recorder{}
	store.Subscribe(rec.listen, EventOtpSent)

	for i := 0; i < 3; i++ {
		store.ResendOtp(context.Background())
		require.Equal(t, i+1, rec.count(EventOtpSent))
	}

	require.Equal(t, "pay-1", store.State().TransferID())
	require.Equal(t, CallState{}, store.State().ResendOtp)
}

func TestResendOtpConcurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := NewMockGateway(ctrl)
	store := initiated(t, gw, "pay-1")

	const calls = 8

	gw.EXPECT().ResendOtp(gomock.Any(), gomock.Any()).Times(calls).Return(nil)

	rec := &recorder{}
	store.Subscribe(rec.listen, EventOtpSent)

	var wg sync.WaitGroup

	for i := 0; i < calls; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()
			store.ResendOtp(context.Background())
		}()
	}

	wg.Wait()

	require.Equal(t, calls, rec.count(EventOtpSent))
}

func TestContactsAndAddContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	contacts := []domain.Recipient{{UserID: "u2", DisplayName: "Maria"}}

	gw := NewMockGateway(ctrl)
	gw.EXPECT().AddContact(gomock.Any(), "ref-2", "002", "Maria").Times(1).Return(nil)
	gw.EXPECT().ListRecentContacts(gomock.Any()).Times(1).Return(contacts, nil)

	store := New(gw)

	var refreshes int

	store.Subscribe(func(ev Event) {
		refreshes++
		store.ListContacts(context.Background())
	}, EventContactAdded)

	store.AddContact(context.Background(), "ref-2", "002", "Maria")

	require.Equal(t, 1, refreshes)
	require.Equal(t, contacts, store.State().Contacts.Result)
}

func TestListFailuresKeepPreviousResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	banks := []domain.EBank{{ID: "1", Name: "BDO"}}
	methods := []domain.PaymentMethod{{LocalInstrument: "Instapay", IsActive: true}}

	gw := NewMockGateway(ctrl)
	gomock.InOrder(
		gw.EXPECT().ListEBanks(gomock.Any()).Return(banks, nil),
		gw.EXPECT().ListEBanks(gomock.Any()).Return(nil, domain.ErrTransport),
	)
	gomock.InOrder(
		gw.EXPECT().ListPaymentMethods(gomock.Any()).Return(methods, nil),
		gw.EXPECT().ListPaymentMethods(gomock.Any()).Return(nil, domain.ErrTransport),
	)

	store := New(gw)

	store.ListEBanks(context.Background())
	store.ListEBanks(context.Background())
	store.ListPaymentMethods(context.Background())
	store.ListPaymentMethods(context.Background())

	got := store.State()
	require.Equal(t, banks, got.EBanks.Result)
	require.ErrorIs(t, got.EBanks.Err, domain.ErrTransport)
	require.Equal(t, methods, got.PaymentMethods.Result)
	require.ErrorIs(t, got.PaymentMethods.Err, domain.ErrTransport)

	store.SetPaymentMethod(methods[0])
	require.Equal(t, &methods[0], store.State().PaymentMethod)
}

func TestClearErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := NewMockGateway(ctrl)
	gw.EXPECT().ListRecentContacts(gomock.Any()).Times(1).Return(nil, domain.ErrTransport)

	store := New(gw)
	rec := &recorder{}
	store.Subscribe(rec.listen, EventStateChanged)

	store.ClearErrors()
	require.Empty(t, rec.events)

	store.ListContacts(context.Background())
	store.AuthorizeTransfer(context.Background(), "000000")
	require.Len(t, store.State().Errors(), 2)

	before := rec.count(EventStateChanged)

	store.ClearErrors()
	require.Empty(t, store.State().Errors())
	require.Equal(t, before+1, rec.count(EventStateChanged))

	store.ClearErrors()
	require.Equal(t, before+1, rec.count(EventStateChanged))
}

func TestUnsubscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := NewMockGateway(ctrl)
	store := New(gw)

	rec := &recorder{}
	unsubscribe := store.Subscribe(rec.listen)

	store.SetPaymentMethod(domain.PaymentMethod{LocalInstrument: "UD"})
	require.Equal(t, 1, rec.count(EventStateChanged))

	unsubscribe()

	store.SetPaymentMethod(domain.PaymentMethod{LocalInstrument: "Instapay"})
	require.Equal(t, 1, rec.count(EventStateChanged))
}
