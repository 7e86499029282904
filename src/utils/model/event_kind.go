package model

// EventKind is "<Pallet>.<Event>"
type EventKind string

const (
	// System
	EventExtrinsicSuccess EventKind = "System.ExtrinsicSuccess"
	EventExtrinsicFailed  EventKind = "System.ExtrinsicFailed"
	EventNewAccount       EventKind = "System.NewAccount"
	EventKilledAccount    EventKind = "System.KilledAccount"
	EventCodeUpdated      EventKind = "System.CodeUpdated"
	EventRemarked         EventKind = "System.Remarked"

	// Balances
	EventBalancesEndowed            EventKind = "Balances.Endowed"
	EventBalancesDustLost           EventKind = "Balances.DustLost"
	EventBalancesTransfer           EventKind = "Balances.Transfer"
	EventBalancesBalanceSet         EventKind = "Balances.BalanceSet"
	EventBalancesReserved           EventKind = "Balances.Reserved"
	EventBalancesUnreserved         EventKind = "Balances.Unreserved"
	EventBalancesDeposit            EventKind = "Balances.Deposit"
	EventBalancesWithdraw           EventKind = "Balances.Withdraw"
	EventBalancesSlashed            EventKind = "Balances.Slashed"
	EventTransactionFeePaid         EventKind = "TransactionPayment.TransactionFeePaid"
	EventBalancesReserveRepatriated EventKind = "Balances.ReserveRepatriated"

	// Smart contracts
	EventContractCreated                     EventKind = "SmartContractModule.ContractCreated"
	EventContractUpdated                     EventKind = "SmartContractModule.ContractUpdated"
	EventNodeContractCanceled                EventKind = "SmartContractModule.NodeContractCanceled"
	EventNameContractCanceled                EventKind = "SmartContractModule.NameContractCanceled"
	EventRentContractCanceled                EventKind = "SmartContractModule.RentContractCanceled"
	EventIPsReserved                         EventKind = "SmartContractModule.IPsReserved"
	EventIPsFreed                            EventKind = "SmartContractModule.IPsFreed"
	EventContractDeployed                    EventKind = "SmartContractModule.ContractDeployed"
	EventConsumptionReportReceived           EventKind = "SmartContractModule.ConsumptionReportReceived"
	EventContractBilled                      EventKind = "SmartContractModule.ContractBilled"
	EventTokensBurned                        EventKind = "SmartContractModule.TokensBurned"
	EventUpdatedUsedResources                EventKind = "SmartContractModule.UpdatedUsedResources"
	EventNruConsumptionReportReceived        EventKind = "SmartContractModule.NruConsumptionReportReceived"
	EventContractGracePeriodStarted          EventKind = "SmartContractModule.ContractGracePeriodStarted"
	EventContractGracePeriodEnded            EventKind = "SmartContractModule.ContractGracePeriodEnded"
	EventNodeMarkedAsDedicated               EventKind = "SmartContractModule.NodeMarkedAsDedicated"
	EventSolutionProviderCreated             EventKind = "SmartContractModule.SolutionProviderCreated"
	EventSolutionProviderApproved            EventKind = "SmartContractModule.SolutionProviderApproved"
	EventGroupCreated                        EventKind = "SmartContractModule.GroupCreated"
	EventGroupDeleted                        EventKind = "SmartContractModule.GroupDeleted"
	EventCapacityReservationContractCanceled EventKind = "SmartContractModule.CapacityReservationContractCanceled"
	EventDeploymentCreated                   EventKind = "SmartContractModule.DeploymentCreated"
	EventDeploymentUpdated                   EventKind = "SmartContractModule.DeploymentUpdated"
	EventDeploymentCanceled                  EventKind = "SmartContractModule.DeploymentCanceled"

	// Grid registry
	EventFarmStored                    EventKind = "TfgridModule.FarmStored"
	EventFarmUpdated                   EventKind = "TfgridModule.FarmUpdated"
	EventFarmDeleted                   EventKind = "TfgridModule.FarmDeleted"
	EventNodeStored                    EventKind = "TfgridModule.NodeStored"
	EventNodeUpdated                   EventKind = "TfgridModule.NodeUpdated"
	EventNodeDeleted                   EventKind = "TfgridModule.NodeDeleted"
	EventNodeUptimeReported            EventKind = "TfgridModule.NodeUptimeReported"
	EventNodePublicConfigStored        EventKind = "TfgridModule.NodePublicConfigStored"
	EventPowerTargetChanged            EventKind = "TfgridModule.PowerTargetChanged"
	EventPowerStateChanged             EventKind = "TfgridModule.PowerStateChanged"
	EventEntityStored                  EventKind = "TfgridModule.EntityStored"
	EventEntityUpdated                 EventKind = "TfgridModule.EntityUpdated"
	EventEntityDeleted                 EventKind = "TfgridModule.EntityDeleted"
	EventTwinStored                    EventKind = "TfgridModule.TwinStored"
	EventTwinUpdated                   EventKind = "TfgridModule.TwinUpdated"
	EventTwinDeleted                   EventKind = "TfgridModule.TwinDeleted"
	EventTwinEntityStored              EventKind = "TfgridModule.TwinEntityStored"
	EventTwinEntityRemoved             EventKind = "TfgridModule.TwinEntityRemoved"
	EventPricingPolicyStored           EventKind = "TfgridModule.PricingPolicyStored"
	EventFarmingPolicyStored           EventKind = "TfgridModule.FarmingPolicyStored"
	EventFarmPayoutV2AddressRegistered EventKind = "TfgridModule.FarmPayoutV2AddressRegistered"
	EventFarmMarkedAsDedicated         EventKind = "TfgridModule.FarmMarkedAsDedicated"
	EventConnectionPriceSet            EventKind = "TfgridModule.ConnectionPriceSet"
	EventNodeCertificationSet          EventKind = "TfgridModule.NodeCertificationSet"
	EventNodeCertifierAdded            EventKind = "TfgridModule.NodeCertifierAdded"
	EventNodeCertifierRemoved          EventKind = "TfgridModule.NodeCertifierRemoved"
	EventFarmingPolicyUpdated          EventKind = "TfgridModule.FarmingPolicyUpdated"
	EventFarmingPolicySet              EventKind = "TfgridModule.FarmingPolicySet"
	EventFarmCertificationSet          EventKind = "TfgridModule.FarmCertificationSet"
	EventZosVersionUpdated             EventKind = "TfgridModule.ZosVersionUpdated"

	// Burning
	EventBurnTransactionCreated EventKind = "BurningModule.BurnTransactionCreated"

	// Bridge mints
	EventMintTransactionProposed EventKind = "TFTBridgeModule.MintTransactionProposed"
	EventMintTransactionVoted    EventKind = "TFTBridgeModule.MintTransactionVoted"
	EventMintCompleted           EventKind = "TFTBridgeModule.MintCompleted"
	EventMintTransactionExpired  EventKind = "TFTBridgeModule.MintTransactionExpired"

	// Bridge burns
	EventBridgeBurnTransactionCreated  EventKind = "TFTBridgeModule.BurnTransactionCreated"
	EventBurnTransactionProposed       EventKind = "TFTBridgeModule.BurnTransactionProposed"
	EventBurnTransactionSignatureAdded EventKind = "TFTBridgeModule.BurnTransactionSignatureAdded"
	EventBurnTransactionReady          EventKind = "TFTBridgeModule.BurnTransactionReady"
	EventBurnTransactionProcessed      EventKind = "TFTBridgeModule.BurnTransactionProcessed"
	EventBridgeBurnTransactionExpired  EventKind = "TFTBridgeModule.BurnTransactionExpired"

	// Bridge refunds
	EventRefundTransactionCreated        EventKind = "TFTBridgeModule.RefundTransactionCreated"
	EventRefundTransactionSignatureAdded EventKind = "TFTBridgeModule.RefundTransactionsignatureAdded"
	EventRefundTransactionReady          EventKind = "TFTBridgeModule.RefundTransactionReady"
	EventRefundTransactionProcessed      EventKind = "TFTBridgeModule.RefundTransactionProcessed"
	EventRefundTransactionExpired        EventKind = "TFTBridgeModule.RefundTransactionExpired"

	// Price oracle
	EventPriceStored                 EventKind = "TFTPriceModule.PriceStored"
	EventAveragePriceStored          EventKind = "TFTPriceModule.AveragePriceStored"
	EventOffchainWorkerExecuted      EventKind = "TFTPriceModule.OffchainWorkerExecuted"
	EventAveragePriceIsAboveMaxPrice EventKind = "TFTPriceModule.AveragePriceIsAboveMaxPrice"
	EventAveragePriceIsBelowMinPrice EventKind = "TFTPriceModule.AveragePriceIsBelowMinPrice"

	// Key value store
	EventEntrySet   EventKind = "TFKVStore.EntrySet"
	EventEntryGot   EventKind = "TFKVStore.EntryGot"
	EventEntryTaken EventKind = "TFKVStore.EntryTaken"

	// Validators
	EventValidatorAdditionInitiated EventKind = "ValidatorSet.ValidatorAdditionInitiated"
	EventValidatorRemovalInitiated  EventKind = "ValidatorSet.ValidatorRemovalInitiated"
	EventBonded                     EventKind = "Validator.Bonded"
	EventValidatorRequestCreated    EventKind = "Validator.ValidatorRequestCreated"
	EventValidatorRequestApproved   EventKind = "Validator.ValidatorRequestApproved"
	EventValidatorActivated         EventKind = "Validator.ValidatorActivated"
	EventValidatorRemoved           EventKind = "Validator.ValidatorRemoved"
	EventNodeValidatorChanged       EventKind = "Validator.NodeValidatorChanged"
	EventNodeValidatorRemoved       EventKind = "Validator.NodeValidatorRemoved"

	// Council membership
	EventMemberAdded    EventKind = "CouncilMembership.MemberAdded"
	EventMemberRemoved  EventKind = "CouncilMembership.MemberRemoved"
	EventMembersSwapped EventKind = "CouncilMembership.MembersSwapped"
	EventMembersReset   EventKind = "CouncilMembership.MembersReset"
	EventKeyChanged     EventKind = "CouncilMembership.KeyChanged"
	EventDummy          EventKind = "CouncilMembership.Dummy"

	// Dao
	EventDaoVoted             EventKind = "Dao.Voted"
	EventDaoProposed          EventKind = "Dao.Proposed"
	EventDaoApproved          EventKind = "Dao.Approved"
	EventDaoDisapproved       EventKind = "Dao.Disapproved"
	EventDaoExecuted          EventKind = "Dao.Executed"
	EventDaoClosed            EventKind = "Dao.Closed"
	EventDaoClosedByCouncil   EventKind = "Dao.ClosedByCouncil"
	EventDaoCouncilMemberVeto EventKind = "Dao.CouncilMemberVeto"
)

var knownEventKinds = map[EventKind]struct{}{}

func init() {
	for _, kind := range []EventKind{
		EventExtrinsicSuccess, EventExtrinsicFailed, EventNewAccount, EventKilledAccount, EventCodeUpdated, EventRemarked,
		EventBalancesEndowed, EventBalancesDustLost, EventBalancesTransfer, EventBalancesBalanceSet, EventBalancesReserved,
		EventBalancesUnreserved, EventBalancesDeposit, EventBalancesWithdraw, EventBalancesSlashed, EventTransactionFeePaid,
		EventBalancesReserveRepatriated,
		EventContractCreated, EventContractUpdated, EventNodeContractCanceled, EventNameContractCanceled,
		EventRentContractCanceled, EventIPsReserved, EventIPsFreed, EventContractDeployed, EventConsumptionReportReceived,
		EventContractBilled, EventTokensBurned, EventUpdatedUsedResources, EventNruConsumptionReportReceived,
		EventContractGracePeriodStarted, EventContractGracePeriodEnded, EventNodeMarkedAsDedicated,
		EventSolutionProviderCreated, EventSolutionProviderApproved, EventGroupCreated, EventGroupDeleted,
		EventCapacityReservationContractCanceled, EventDeploymentCreated, EventDeploymentUpdated, EventDeploymentCanceled,
		EventFarmStored, EventFarmUpdated, EventFarmDeleted, EventNodeStored, EventNodeUpdated, EventNodeDeleted,
		EventNodeUptimeReported, EventNodePublicConfigStored, EventPowerTargetChanged, EventPowerStateChanged,
		EventEntityStored, EventEntityUpdated, EventEntityDeleted, EventTwinStored, EventTwinUpdated, EventTwinDeleted,
		EventTwinEntityStored, EventTwinEntityRemoved, EventPricingPolicyStored, EventFarmingPolicyStored,
		EventFarmPayoutV2AddressRegistered, EventFarmMarkedAsDedicated, EventConnectionPriceSet,
		EventNodeCertificationSet, EventNodeCertifierAdded, EventNodeCertifierRemoved, EventFarmingPolicyUpdated,
		EventFarmingPolicySet, EventFarmCertificationSet, EventZosVersionUpdated,
		EventBurnTransactionCreated,
		EventMintTransactionProposed, EventMintTransactionVoted, EventMintCompleted, EventMintTransactionExpired,
		EventBridgeBurnTransactionCreated, EventBurnTransactionProposed, EventBurnTransactionSignatureAdded,
		EventBurnTransactionReady, EventBurnTransactionProcessed, EventBridgeBurnTransactionExpired,
		EventRefundTransactionCreated, EventRefundTransactionSignatureAdded, EventRefundTransactionReady,
		EventRefundTransactionProcessed, EventRefundTransactionExpired,
		EventPriceStored, EventAveragePriceStored, EventOffchainWorkerExecuted, EventAveragePriceIsAboveMaxPrice,
		EventAveragePriceIsBelowMinPrice,
		EventEntrySet, EventEntryGot, EventEntryTaken,
		EventValidatorAdditionInitiated, EventValidatorRemovalInitiated, EventBonded, EventValidatorRequestCreated,
		EventValidatorRequestApproved, EventValidatorActivated, EventValidatorRemoved, EventNodeValidatorChanged,
		EventNodeValidatorRemoved,
		EventMemberAdded, EventMemberRemoved, EventMembersSwapped, EventMembersReset, EventKeyChanged, EventDummy,
		EventDaoVoted, EventDaoProposed, EventDaoApproved, EventDaoDisapproved, EventDaoExecuted, EventDaoClosed,
		EventDaoClosedByCouncil, EventDaoCouncilMemberVeto,
	} {
		knownEventKinds[kind] = struct{}{}
	}
}

// IsKnown tells if the kind is one of the declared event kinds
func (self EventKind) IsKnown() bool {
	_, ok := knownEventKinds[self]
	return ok
}
