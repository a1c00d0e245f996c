package premium

import (
	"SipMate-Backend/domain"
	"SipMate-Backend/entities"
	"SipMate-Backend/internal/utils"
	"SipMate-Backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

// PremiumPrice is the one-time SipMate Plus price in IDR.
const PremiumPrice int64 = 49000

type (
	PremiumService interface {
		CreateTransaction(ctx context.Context, userID string) (domain.SubscribeResponse, error)
		HandleWebhook(ctx context.Context, req domain.MidtransWebhookRequest) error
	}

	premiumService struct {
		premiumRepository PremiumRepository
		userService       user.UserService
		snapClient        snap.Client
		coreClient        coreapi.Client
	}
)

func NewPremiumService(premiumRepository PremiumRepository, userService user.UserService) PremiumService {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var snapClient snap.Client
	snapClient.New(utils.GetConfig("SERVER_KEY"), env)

	var coreClient coreapi.Client
	coreClient.New(utils.GetConfig("SERVER_KEY"), env)

	return &premiumService{
		premiumRepository: premiumRepository,
		userService:       userService,
		snapClient:        snapClient,
		coreClient:        coreClient,
	}
}

func (s *premiumService) CreateTransaction(ctx context.Context, userID string) (domain.SubscribeResponse, error) {
	me, err := s.userService.Me(ctx, userID)
	if err != nil {
		return domain.SubscribeResponse{}, err
	}
	if me.IsPremium {
		return domain.SubscribeResponse{}, domain.ErrAlreadyPremium
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SubscribeResponse{}, domain.ErrParseUUID
	}

	orderID := fmt.Sprintf("sipmate-plus-%s-%d", userID, time.Now().Unix())

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: PremiumPrice,
		},
		CreditCard: &snap.CreditCardDetails{Secure: true},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: me.Username,
			Email: me.Email,
		},
	}

	snapResp, midErr := s.snapClient.CreateTransaction(snapReq)
	if midErr != nil {
		return domain.SubscribeResponse{}, midErr
	}

	if err := s.premiumRepository.CreateTransaction(ctx, &entities.PremiumTransaction{
		ID:          uuid.New(),
		OrderID:     orderID,
		UserID:      userUUID,
		GrossAmount: PremiumPrice,
		Status:      "Pending",
	}); err != nil {
		return domain.SubscribeResponse{}, err
	}

	return domain.SubscribeResponse{
		OrderID:     orderID,
		Token:       snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}

// HandleWebhook re-checks the transaction status with midtrans instead of
// trusting the notification payload, then marks the user premium on
// settlement.
func (s *premiumService) HandleWebhook(ctx context.Context, req domain.MidtransWebhookRequest) error {
	tx, err := s.premiumRepository.GetTransactionByOrderID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTransactionNotFound
		}
		return err
	}

	statusResp, midErr := s.coreClient.CheckTransaction(req.OrderID)
	if midErr != nil {
		return midErr
	}

	switch statusResp.TransactionStatus {
	case "capture":
		if statusResp.FraudStatus == "accept" {
			tx.Status = "Settled"
		}
	case "settlement":
		tx.Status = "Settled"
	case "deny", "cancel", "expire":
		tx.Status = "Failed"
	}

	if err := s.premiumRepository.UpdateTransaction(ctx, tx); err != nil {
		return err
	}

	if tx.Status == "Settled" {
		return s.userService.SetPremium(ctx, tx.UserID.String())
	}
	return nil
}
