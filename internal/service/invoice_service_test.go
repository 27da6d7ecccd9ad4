package service

import (
	"context"
	"strings"
	"testing"

	"agentpay-gateway/internal/core/domain"
	"agentpay-gateway/internal/core/ports"
	"agentpay-gateway/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInvoiceService_Get_AppliesLazyExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deriver, builder := newFixtures()
	mockLedger := mocks.NewMockLedgerReader(ctrl)
	svc := NewInvoiceService(mockLedger, deriver, builder, zerolog.Nop())
	svc.now = func() int64 { return 2000 }

	stored := &domain.Invoice{ID: 7, RequesterName: "alice", PayerName: "bob", Status: domain.InvoicePending, ExpiresAt: 1500}
	mockLedger.EXPECT().FetchRaw(gomock.Any(), deriver.InvoiceAddress(7)).Return(encodeInvoice(stored), nil)

	view, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "expired", view.Status)
	assert.Equal(t, domain.InvoicePending, view.Invoice.Status) // stored status untouched
}

func TestInvoiceService_Get_NeverExpiresWhenZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deriver, builder := newFixtures()
	mockLedger := mocks.NewMockLedgerReader(ctrl)
	svc := NewInvoiceService(mockLedger, deriver, builder, zerolog.Nop())
	svc.now = func() int64 { return 1 << 40 }

	stored := &domain.Invoice{ID: 7, RequesterName: "alice", PayerName: "bob", Status: domain.InvoicePending, ExpiresAt: 0}
	mockLedger.EXPECT().FetchRaw(gomock.Any(), deriver.InvoiceAddress(7)).Return(encodeInvoice(stored), nil)

	view, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "pending", view.Status)
}

func TestInvoiceService_ListByAgent_RoleAndStatusFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deriver, builder := newFixtures()
	mockLedger := mocks.NewMockLedgerReader(ctrl)
	svc := NewInvoiceService(mockLedger, deriver, builder, zerolog.Nop())
	svc.now = func() int64 { return 2000 }

	record, _ := deriver.AgentAddresses("bob")
	mockLedger.EXPECT().
		FetchAllOfKind(gomock.Any(), ports.KindInvoice, &ports.MemcmpFilter{
			Offset: invoicePayerOffset,
			Bytes:  record.Bytes(),
		}).
		Return([]ports.RawAccount{
			{Address: addr(1), Data: encodeInvoice(&domain.Invoice{ID: 1, RequesterName: "a", PayerName: "bob", Status: domain.InvoicePending})},
			{Address: addr(2), Data: encodeInvoice(&domain.Invoice{ID: 2, RequesterName: "a", PayerName: "bob", Status: domain.InvoicePending, ExpiresAt: 1000})},
			{Address: addr(3), Data: encodeInvoice(&domain.Invoice{ID: 3, RequesterName: "a", PayerName: "bob", Status: domain.InvoicePaid})},
		}, nil)

	// The lapsed pending invoice must match "expired", not "pending".
	views, err := svc.ListByAgent(context.Background(), "bob", RolePayer, "expired")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, uint64(2), views[0].Invoice.ID)
}

func TestInvoiceService_ListByAgent_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deriver, builder := newFixtures()
	svc := NewInvoiceService(mocks.NewMockLedgerReader(ctrl), deriver, builder, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.ListByAgent(ctx, "bob", "observer", "")
	assertAppCode(t, err, "VAL_001")

	_, err = svc.ListByAgent(ctx, "bob", RolePayer, "limbo")
	assertAppCode(t, err, "VAL_001")
}

func TestInvoiceService_NextID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deriver, builder := newFixtures()
	mockLedger := mocks.NewMockLedgerReader(ctrl)
	svc := NewInvoiceService(mockLedger, deriver, builder, zerolog.Nop())

	mockLedger.EXPECT().FetchRaw(gomock.Any(), deriver.InvoiceCounterAddress()).
		Return(encodeInvoiceCounter(42), nil)

	id, err := svc.NextID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)
}

func TestInvoiceService_InitCounterInstruction_OnlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deriver, builder := newFixtures()
	mockLedger := mocks.NewMockLedgerReader(ctrl)
	svc := NewInvoiceService(mockLedger, deriver, builder, zerolog.Nop())

	counter := deriver.InvoiceCounterAddress()

	mockLedger.EXPECT().AccountExists(gomock.Any(), counter).Return(false, nil)
	ix, err := svc.InitCounterInstruction(context.Background(), svcAuthority)
	require.NoError(t, err)
	assert.Equal(t, "init_invoice_counter", ix.Name)

	mockLedger.EXPECT().AccountExists(gomock.Any(), counter).Return(true, nil)
	_, err = svc.InitCounterInstruction(context.Background(), svcAuthority)
	assertAppCode(t, err, "ENT_002")
}

func TestInvoiceService_CreateInstruction_UsesFreshCounterID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deriver, builder := newFixtures()
	mockLedger := mocks.NewMockLedgerReader(ctrl)
	svc := NewInvoiceService(mockLedger, deriver, builder, zerolog.Nop())

	aliceRecord, _ := deriver.AgentAddresses("alice")
	bobRecord, _ := deriver.AgentAddresses("bob")
	mockLedger.EXPECT().AccountExists(gomock.Any(), aliceRecord).Return(true, nil)
	mockLedger.EXPECT().AccountExists(gomock.Any(), bobRecord).Return(true, nil)
	mockLedger.EXPECT().FetchRaw(gomock.Any(), deriver.InvoiceCounterAddress()).
		Return(encodeInvoiceCounter(9), nil)

	ix, err := svc.CreateInstruction(context.Background(), "alice", "bob", 3_000_000, "work", 86_400, svcAuthority)
	require.NoError(t, err)
	assert.Equal(t, "create_invoice", ix.Name)
	assert.Equal(t, domain.Meta(deriver.InvoiceAddress(9), true), ix.Accounts[0])
}

func TestInvoiceService_PayInstruction_RejectsNonPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deriver, builder := newFixtures()
	mockLedger := mocks.NewMockLedgerReader(ctrl)
	svc := NewInvoiceService(mockLedger, deriver, builder, zerolog.Nop())
	svc.now = func() int64 { return 2000 }

	invAddr := deriver.InvoiceAddress(7)

	mockLedger.EXPECT().FetchRaw(gomock.Any(), invAddr).
		Return(encodeInvoice(&domain.Invoice{ID: 7, RequesterName: "alice", PayerName: "bob", Status: domain.InvoicePaid}), nil)
	_, err := svc.PayInstruction(context.Background(), 7, svcAuthority)
	assertAppCode(t, err, "ENT_003")

	// Lazy expiry blocks payment too: stored pending, lapsed expiry.
	mockLedger.EXPECT().FetchRaw(gomock.Any(), invAddr).
		Return(encodeInvoice(&domain.Invoice{ID: 7, RequesterName: "alice", PayerName: "bob", Status: domain.InvoicePending, ExpiresAt: 1500}), nil)
	_, err = svc.PayInstruction(context.Background(), 7, svcAuthority)
	assertAppCode(t, err, "ENT_003")

	mockLedger.EXPECT().FetchRaw(gomock.Any(), invAddr).
		Return(encodeInvoice(&domain.Invoice{ID: 7, RequesterName: "alice", PayerName: "bob", Status: domain.InvoicePending}), nil)
	ix, err := svc.PayInstruction(context.Background(), 7, svcAuthority)
	require.NoError(t, err)
	assert.Equal(t, "pay_invoice", ix.Name)
}

func TestInvoiceService_RejectAndCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deriver, builder := newFixtures()
	mockLedger := mocks.NewMockLedgerReader(ctrl)
	svc := NewInvoiceService(mockLedger, deriver, builder, zerolog.Nop())

	pending := encodeInvoice(&domain.Invoice{ID: 7, RequesterName: "alice", PayerName: "bob", Status: domain.InvoicePending})
	invAddr := deriver.InvoiceAddress(7)

	mockLedger.EXPECT().FetchRaw(gomock.Any(), invAddr).Return(pending, nil)
	rej, err := svc.RejectInstruction(context.Background(), 7, svcAuthority)
	require.NoError(t, err)
	assert.Equal(t, "reject_invoice", rej.Name)

	mockLedger.EXPECT().FetchRaw(gomock.Any(), invAddr).Return(pending, nil)
	can, err := svc.CancelInstruction(context.Background(), 7, svcAuthority)
	require.NoError(t, err)
	assert.Equal(t, "cancel_invoice", can.Name)
}

func TestInvoiceService_RefundInstruction_ReversesPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deriver, builder := newFixtures()
	mockLedger := mocks.NewMockLedgerReader(ctrl)
	svc := NewInvoiceService(mockLedger, deriver, builder, zerolog.Nop())

	paid := encodeInvoice(&domain.Invoice{ID: 7, RequesterName: "alice", PayerName: "bob", Amount: 3_000_000, Status: domain.InvoicePaid})
	invAddr := deriver.InvoiceAddress(7)

	// Amount 0 refunds the full original payment, alice back to bob.
	mockLedger.EXPECT().FetchRaw(gomock.Any(), invAddr).Return(paid, nil)
	ix, err := svc.RefundInstruction(context.Background(), 7, "alice", 0, "", svcAuthority)
	require.NoError(t, err)
	assert.Equal(t, "transfer_by_name", ix.Name)
	aliceRecord, _ := deriver.AgentAddresses("alice")
	assert.Equal(t, domain.Meta(aliceRecord, true), ix.Accounts[0])
	assert.Equal(t, uint64(3_000_000), ix.Args["amount"])
	assert.Equal(t, "Refund (ref: invoice#7)", ix.Args["memo"])

	// Partial refund with a reason.
	mockLedger.EXPECT().FetchRaw(gomock.Any(), invAddr).Return(paid, nil)
	ix, err = svc.RefundInstruction(context.Background(), 7, "alice", 1_000_000, "damaged goods", svcAuthority)
	require.NoError(t, err)
	assert.Equal(t, uint64(1_000_000), ix.Args["amount"])
	assert.Equal(t, "Refund: damaged goods (ref: invoice#7)", ix.Args["memo"])
}

func TestInvoiceService_RefundInstruction_Guards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deriver, builder := newFixtures()
	mockLedger := mocks.NewMockLedgerReader(ctrl)
	svc := NewInvoiceService(mockLedger, deriver, builder, zerolog.Nop())
	ctx := context.Background()

	invAddr := deriver.InvoiceAddress(7)
	paid := encodeInvoice(&domain.Invoice{ID: 7, RequesterName: "alice", PayerName: "bob", Amount: 3_000_000, Status: domain.InvoicePaid})

	// Only settled invoices can be refunded.
	mockLedger.EXPECT().FetchRaw(gomock.Any(), invAddr).
		Return(encodeInvoice(&domain.Invoice{ID: 7, RequesterName: "alice", PayerName: "bob", Amount: 3_000_000, Status: domain.InvoicePending}), nil)
	_, err := svc.RefundInstruction(ctx, 7, "alice", 0, "", svcAuthority)
	assertAppCode(t, err, "ENT_002")

	// Only the requester may issue the refund.
	mockLedger.EXPECT().FetchRaw(gomock.Any(), invAddr).Return(paid, nil)
	_, err = svc.RefundInstruction(ctx, 7, "bob", 0, "", svcAuthority)
	assertAppCode(t, err, "ENT_002")

	// A refund never exceeds the original payment.
	mockLedger.EXPECT().FetchRaw(gomock.Any(), invAddr).Return(paid, nil)
	_, err = svc.RefundInstruction(ctx, 7, "alice", 3_000_001, "", svcAuthority)
	assertAppCode(t, err, "VAL_001")
}

func TestRefundMemo_TruncatesLongReason(t *testing.T) {
	long := strings.Repeat("x", 200)
	memo := refundMemo(7, long)
	assert.True(t, strings.HasSuffix(memo, "..."))
	assert.LessOrEqual(t, len(memo), domain.MaxMemoBytes)
	assert.True(t, strings.HasPrefix(memo, "Refund: xxx"))
}
