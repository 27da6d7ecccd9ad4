package service

import (
	"context"
	"testing"

	"agentpay-gateway/internal/core/domain"
	"agentpay-gateway/internal/core/ports"
	"agentpay-gateway/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSubscriptionService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deriver, builder := newFixtures()
	mockLedger := mocks.NewMockLedgerReader(ctrl)
	svc := NewSubscriptionService(mockLedger, deriver, builder, zerolog.Nop())

	want := &domain.Subscription{SenderName: "alice", ReceiverName: "bob", Amount: 500, IsActive: true}
	addr := deriver.SubscriptionAddress("alice", "bob")
	mockLedger.EXPECT().FetchRaw(gomock.Any(), addr).Return(encodeSubscription(want), nil)

	got, err := svc.Get(context.Background(), "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSubscriptionService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deriver, builder := newFixtures()
	mockLedger := mocks.NewMockLedgerReader(ctrl)
	svc := NewSubscriptionService(mockLedger, deriver, builder, zerolog.Nop())

	mockLedger.EXPECT().FetchRaw(gomock.Any(), gomock.Any()).Return(nil, ports.ErrAccountNotFound)

	_, err := svc.Get(context.Background(), "alice", "bob")
	assertAppCode(t, err, "ENT_001")
}

func TestSubscriptionService_ListBySender_FiltersOnSenderRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deriver, builder := newFixtures()
	mockLedger := mocks.NewMockLedgerReader(ctrl)
	svc := NewSubscriptionService(mockLedger, deriver, builder, zerolog.Nop())

	record, _ := deriver.AgentAddresses("alice")
	mockLedger.EXPECT().
		FetchAllOfKind(gomock.Any(), ports.KindSubscription, &ports.MemcmpFilter{
			Offset: subscriptionSenderOffset,
			Bytes:  record.Bytes(),
		}).
		Return([]ports.RawAccount{
			{Address: addr(1), Data: encodeSubscription(&domain.Subscription{SenderName: "alice", ReceiverName: "bob"})},
		}, nil)

	subs, err := svc.ListBySender(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "bob", subs[0].ReceiverName)
}

func TestSubscriptionService_ListDue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deriver, builder := newFixtures()
	mockLedger := mocks.NewMockLedgerReader(ctrl)
	svc := NewSubscriptionService(mockLedger, deriver, builder, zerolog.Nop())
	svc.now = func() int64 { return 1000 }

	mockLedger.EXPECT().FetchAllOfKind(gomock.Any(), ports.KindSubscription, nil).Return([]ports.RawAccount{
		{Address: addr(1), Data: encodeSubscription(&domain.Subscription{SenderName: "a", ReceiverName: "b", IsActive: true, NextDue: 400})},
		{Address: addr(2), Data: encodeSubscription(&domain.Subscription{SenderName: "c", ReceiverName: "d", IsActive: true, NextDue: 2000})},
		{Address: addr(3), Data: encodeSubscription(&domain.Subscription{SenderName: "e", ReceiverName: "f", IsActive: false, NextDue: 400})},
	}, nil)

	due, err := svc.ListDue(context.Background())
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "a", due[0].Subscription.SenderName)
	assert.Equal(t, int64(600), due[0].OverdueSecs)
}

func TestSubscriptionService_CreateInstruction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deriver, builder := newFixtures()
	mockLedger := mocks.NewMockLedgerReader(ctrl)
	svc := NewSubscriptionService(mockLedger, deriver, builder, zerolog.Nop())

	aliceRecord, _ := deriver.AgentAddresses("alice")
	bobRecord, _ := deriver.AgentAddresses("bob")
	subAddr := deriver.SubscriptionAddress("alice", "bob")
	mockLedger.EXPECT().AccountExists(gomock.Any(), aliceRecord).Return(true, nil)
	mockLedger.EXPECT().AccountExists(gomock.Any(), bobRecord).Return(true, nil)
	mockLedger.EXPECT().AccountExists(gomock.Any(), subAddr).Return(false, nil)

	ix, err := svc.CreateInstruction(context.Background(), "alice", "bob", 500_000, 3600, svcAuthority)
	require.NoError(t, err)
	assert.Equal(t, "create_subscription", ix.Name)
}

func TestSubscriptionService_CreateInstruction_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deriver, builder := newFixtures()
	svc := NewSubscriptionService(mocks.NewMockLedgerReader(ctrl), deriver, builder, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.CreateInstruction(ctx, "alice", "bob", 500, 59, svcAuthority)
	assertAppCode(t, err, "VAL_007")

	_, err = svc.CreateInstruction(ctx, "alice", "bob", 0, 3600, svcAuthority)
	assertAppCode(t, err, "VAL_004")

	_, err = svc.CreateInstruction(ctx, "alice", "alice", 500, 3600, svcAuthority)
	assertAppCode(t, err, "VAL_001")
}

func TestSubscriptionService_CreateInstruction_AlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deriver, builder := newFixtures()
	mockLedger := mocks.NewMockLedgerReader(ctrl)
	svc := NewSubscriptionService(mockLedger, deriver, builder, zerolog.Nop())

	mockLedger.EXPECT().AccountExists(gomock.Any(), gomock.Any()).Return(true, nil).Times(3)

	_, err := svc.CreateInstruction(context.Background(), "alice", "bob", 500, 3600, svcAuthority)
	assertAppCode(t, err, "ENT_002")
}

func TestSubscriptionService_ExecuteInstruction_DueChecks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deriver, builder := newFixtures()
	mockLedger := mocks.NewMockLedgerReader(ctrl)
	svc := NewSubscriptionService(mockLedger, deriver, builder, zerolog.Nop())
	svc.now = func() int64 { return 1000 }

	subAddr := deriver.SubscriptionAddress("alice", "bob")

	mockLedger.EXPECT().FetchRaw(gomock.Any(), subAddr).
		Return(encodeSubscription(&domain.Subscription{SenderName: "alice", ReceiverName: "bob", IsActive: true, NextDue: 900}), nil)
	ix, err := svc.ExecuteInstruction(context.Background(), "alice", "bob", svcAuthority)
	require.NoError(t, err)
	assert.Equal(t, "execute_subscription", ix.Name)

	mockLedger.EXPECT().FetchRaw(gomock.Any(), subAddr).
		Return(encodeSubscription(&domain.Subscription{SenderName: "alice", ReceiverName: "bob", IsActive: true, NextDue: 2000}), nil)
	_, err = svc.ExecuteInstruction(context.Background(), "alice", "bob", svcAuthority)
	assertAppCode(t, err, "ENT_002")

	mockLedger.EXPECT().FetchRaw(gomock.Any(), subAddr).
		Return(encodeSubscription(&domain.Subscription{SenderName: "alice", ReceiverName: "bob", IsActive: false, NextDue: 900}), nil)
	_, err = svc.ExecuteInstruction(context.Background(), "alice", "bob", svcAuthority)
	assertAppCode(t, err, "ENT_002")
}

func TestSubscriptionService_CancelInstruction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deriver, builder := newFixtures()
	mockLedger := mocks.NewMockLedgerReader(ctrl)
	svc := NewSubscriptionService(mockLedger, deriver, builder, zerolog.Nop())

	subAddr := deriver.SubscriptionAddress("alice", "bob")
	mockLedger.EXPECT().FetchRaw(gomock.Any(), subAddr).
		Return(encodeSubscription(&domain.Subscription{SenderName: "alice", ReceiverName: "bob", IsActive: true}), nil)

	ix, err := svc.CancelInstruction(context.Background(), "alice", "bob", svcAuthority)
	require.NoError(t, err)
	assert.Equal(t, "cancel_subscription", ix.Name)
}
