package service

import (
	"context"
	"crypto/sha512"
	"fmt"
	"time"

	"sipspot-be/internal/config"
	"sipspot-be/internal/dto"
	"sipspot-be/internal/entity"
	"sipspot-be/internal/pkg/apperr"
	"sipspot-be/internal/pkg/authz"
	"sipspot-be/internal/pkg/mailer"
	"sipspot-be/internal/repository/specification"
	"sipspot-be/internal/repository/unitofwork"

	"sipspot-be/pkg/events"
	pkgNats "sipspot-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type IPaymentService interface {
	GetPlans(ctx context.Context) ([]*dto.PlanResponse, error)
	GetOrderSummary(ctx context.Context, planId uuid.UUID) (*dto.OrderSummaryResponse, error)
	Checkout(ctx context.Context, userId uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	StartTrial(ctx context.Context, userId uuid.UUID, req *dto.StartTrialRequest) (*dto.SubscriptionStatusResponse, error)
	HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error
	GetSubscriptionStatus(ctx context.Context, userId uuid.UUID) (*dto.SubscriptionStatusResponse, error)
	CancelSubscription(ctx context.Context, userId uuid.UUID) error
	HasLiveSubscription(ctx context.Context, userId uuid.UUID) (bool, error)

	// Plan management, admin only.
	CreatePlan(ctx context.Context, principal authz.Principal, req *dto.CreatePlanRequest) (*dto.PlanResponse, error)
	UpdatePlan(ctx context.Context, principal authz.Principal, planId uuid.UUID, req *dto.UpdatePlanRequest) (*dto.PlanResponse, error)
	SetPlanActive(ctx context.Context, principal authz.Principal, planId uuid.UUID, active bool) error
}

type paymentService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pkgNats.Publisher
	midtransCfg    config.MidtransConfig
	clientURL      string
}

func NewPaymentService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService, eventPublisher *pkgNats.Publisher, midtransCfg config.MidtransConfig, clientURL string) IPaymentService {
	return &paymentService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		midtransCfg:    midtransCfg,
		clientURL:      clientURL,
	}
}

func toPlanResponse(p *entity.SubscriptionPlan) *dto.PlanResponse {
	return &dto.PlanResponse{
		Id:            p.Id,
		Name:          p.Name,
		Slug:          p.Slug,
		Description:   p.Description,
		Price:         p.Price,
		BillingPeriod: string(p.BillingPeriod),
		TrialDays:     p.TrialDays,
		IsActive:      p.IsActive,
	}
}

func periodEndFor(plan *entity.SubscriptionPlan, start time.Time) time.Time {
	if plan.BillingPeriod == entity.BillingPeriodYearly {
		return start.AddDate(1, 0, 0)
	}
	return start.AddDate(0, 1, 0)
}

func (s *paymentService) GetPlans(ctx context.Context) ([]*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plans, err := uow.SubscriptionRepository().FindAllPlans(ctx,
		specification.ActivePlans{},
		specification.OrderBy{Field: "sort_order"},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, toPlanResponse(p))
	}
	return out, nil
}

func (s *paymentService) GetOrderSummary(ctx context.Context, planId uuid.UUID) (*dto.OrderSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.SubscriptionRepository().FindOnePlan(ctx, specification.ByID{ID: planId})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperr.NotFound("plan")
	}

	subtotal := plan.Price
	tax := subtotal * plan.TaxRate

	return &dto.OrderSummaryResponse{
		PlanName:      plan.Name,
		BillingPeriod: string(plan.BillingPeriod),
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         subtotal + tax,
		Currency:      "IDR",
	}, nil
}

// latestSubscription returns the user's most recent subscription, or nil.
func latestSubscription(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*entity.PartnerSubscription, error) {
	subs, err := uow.SubscriptionRepository().FindSubscriptions(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 1, Offset: 0},
	)
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return nil, nil
	}
	return subs[0], nil
}

func (s *paymentService) HasLiveSubscription(ctx context.Context, userId uuid.UUID) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subs, err := uow.SubscriptionRepository().FindSubscriptions(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return false, err
	}

	now := time.Now()
	for _, sub := range subs {
		if sub.IsLive(now) {
			return true, nil
		}
	}
	return false, nil
}

func (s *paymentService) StartTrial(ctx context.Context, userId uuid.UUID, req *dto.StartTrialRequest) (*dto.SubscriptionStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user")
	}
	if user.TrialUsed {
		return nil, apperr.Validation("trial already used")
	}

	plan, err := uow.SubscriptionRepository().FindOnePlan(ctx, specification.ByID{ID: req.PlanId})
	if err != nil {
		return nil, err
	}
	if plan == nil || !plan.IsActive {
		return nil, apperr.NotFound("plan")
	}
	if plan.TrialDays <= 0 {
		return nil, apperr.Validation("plan has no trial")
	}

	now := time.Now()
	trialEnd := now.AddDate(0, 0, plan.TrialDays)
	sub := &entity.PartnerSubscription{
		Id:                 uuid.New(),
		UserId:             userId,
		PlanId:             plan.Id,
		Status:             entity.SubscriptionStatusTrialing,
		PaymentStatus:      entity.PaymentStatusPending,
		TrialEndsAt:        &trialEnd,
		CurrentPeriodStart: now,
		CurrentPeriodEnd:   trialEnd,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.SubscriptionRepository().CreateSubscription(ctx, sub); err != nil {
		return nil, err
	}
	if err := uow.UserRepository().MarkTrialUsed(ctx, userId); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.SubscriptionStatusResponse{
		SubscriptionId:   sub.Id,
		PlanName:         plan.Name,
		Status:           string(sub.Status),
		PaymentStatus:    string(sub.PaymentStatus),
		TrialEndsAt:      sub.TrialEndsAt,
		CurrentPeriodEnd: sub.CurrentPeriodEnd,
		IsLive:           sub.IsLive(time.Now()),
	}, nil
}

func (s *paymentService) Checkout(ctx context.Context, userId uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.SubscriptionRepository().FindOnePlan(ctx, specification.ByID{ID: req.PlanId})
	if err != nil {
		return nil, err
	}
	if plan == nil || !plan.IsActive {
		return nil, apperr.NotFound("plan")
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user")
	}

	now := time.Now()
	subId := uuid.New()
	sub := &entity.PartnerSubscription{
		Id:                 subId,
		UserId:             userId,
		PlanId:             plan.Id,
		Status:             entity.SubscriptionStatusInactive,
		PaymentStatus:      entity.PaymentStatusPending,
		CurrentPeriodStart: now,
		CurrentPeriodEnd:   periodEndFor(plan, now),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := uow.SubscriptionRepository().CreateSubscription(ctx, sub); err != nil {
		return nil, err
	}

	// External call after the row is persisted.
	var sClient snap.Client
	env := midtrans.Sandbox
	if s.midtransCfg.Production {
		env = midtrans.Production
	}
	sClient.New(s.midtransCfg.ServerKey, env)

	finalAmount := int64(plan.Price + plan.Price*plan.TaxRate)
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  subId.String(),
			GrossAmt: finalAmount,
		},
		CreditCard: &snap.CreditCardDetails{Secure: true},
		Callbacks: &snap.Callbacks{
			Finish: fmt.Sprintf("%s/partner/billing?payment=success", s.clientURL),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: user.FullName,
			Email: user.Email,
			Phone: user.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    plan.Id.String(),
				Price: finalAmount,
				Qty:   1,
				Name:  plan.Name,
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, apperr.Upstream(fmt.Errorf("midtrans: %s", midErr.GetMessage()))
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "SUBSCRIPTION_CREATED",
			Data: map[string]interface{}{
				"subscription_id": subId,
				"user_id":         userId,
				"plan_id":         plan.Id,
				"plan_name":       plan.Name,
				"amount":          finalAmount,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish SUBSCRIPTION_CREATED event: %v\n", err)
		}
	}

	return &dto.CheckoutResponse{
		SubscriptionId:  subId,
		SnapToken:       snapResp.Token,
		SnapRedirectUrl: snapResp.RedirectURL,
	}, nil
}

func (s *paymentService) HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error {
	if s.midtransCfg.ServerKey == "" {
		return fmt.Errorf("server configuration error")
	}

	// Midtrans signature = SHA512(order_id + status_code + gross_amount + server_key).
	signatureInput := req.OrderId + req.StatusCode + req.GrossAmount + s.midtransCfg.ServerKey
	expectedSignature := fmt.Sprintf("%x", sha512.Sum512([]byte(signatureInput)))
	if req.SignatureKey != expectedSignature {
		return apperr.Validation("invalid signature")
	}

	subId, err := uuid.Parse(req.OrderId)
	if err != nil {
		return apperr.Validation("invalid order id format")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	sub, err := uow.SubscriptionRepository().FindOneSubscription(ctx, specification.ByID{ID: subId})
	if err != nil {
		return err
	}
	if sub == nil {
		return apperr.NotFound("subscription")
	}

	var newStatus entity.SubscriptionStatus
	var newPaymentStatus entity.PaymentStatus
	notifyPaid := false

	switch req.TransactionStatus {
	case "capture", "settlement":
		newStatus = entity.SubscriptionStatusActive
		newPaymentStatus = entity.PaymentStatusPaid
		notifyPaid = true
	case "deny", "cancel", "expire":
		newStatus = entity.SubscriptionStatusInactive
		newPaymentStatus = entity.PaymentStatusFailed
	case "pending":
		return nil
	default:
		return nil
	}

	if sub.Status == newStatus && sub.PaymentStatus == newPaymentStatus {
		return nil
	}

	sub.Status = newStatus
	sub.PaymentStatus = newPaymentStatus
	txId := req.OrderId
	sub.MidtransTransactionId = &txId
	sub.UpdatedAt = time.Now()

	if err := uow.SubscriptionRepository().UpdateSubscription(ctx, sub); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	if notifyPaid && s.emailService != nil {
		go func() {
			user, _ := s.uowFactory.NewUnitOfWork(context.Background()).UserRepository().FindOne(context.Background(), specification.ByID{ID: sub.UserId})
			plan, _ := s.uowFactory.NewUnitOfWork(context.Background()).SubscriptionRepository().FindOnePlan(context.Background(), specification.ByID{ID: sub.PlanId})
			if user != nil && plan != nil {
				amount := int64(plan.Price + plan.Price*plan.TaxRate)
				if err := s.emailService.SendSubscriptionReceipt(user.Email, plan.Name, amount); err != nil {
					fmt.Printf("Error sending receipt email: %v\n", err)
				}
			}
		}()
	}

	return nil
}

func (s *paymentService) GetSubscriptionStatus(ctx context.Context, userId uuid.UUID) (*dto.SubscriptionStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := latestSubscription(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperr.NotFound("subscription")
	}

	planName := ""
	if plan, _ := uow.SubscriptionRepository().FindOnePlan(ctx, specification.ByID{ID: sub.PlanId}); plan != nil {
		planName = plan.Name
	}

	return &dto.SubscriptionStatusResponse{
		SubscriptionId:   sub.Id,
		PlanName:         planName,
		Status:           string(sub.Status),
		PaymentStatus:    string(sub.PaymentStatus),
		TrialEndsAt:      sub.TrialEndsAt,
		CurrentPeriodEnd: sub.CurrentPeriodEnd,
		IsLive:           sub.IsLive(time.Now()),
	}, nil
}

func (s *paymentService) CancelSubscription(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subs, err := uow.SubscriptionRepository().FindSubscriptions(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return err
	}

	var live *entity.PartnerSubscription
	now := time.Now()
	for _, sub := range subs {
		if sub.IsLive(now) {
			live = sub
			break
		}
	}
	if live == nil {
		return apperr.NotFound("subscription")
	}

	live.Status = entity.SubscriptionStatusCanceled
	live.UpdatedAt = now
	return uow.SubscriptionRepository().UpdateSubscription(ctx, live)
}

func (s *paymentService) CreatePlan(ctx context.Context, principal authz.Principal, req *dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	if err := authz.PlanManage.CanWrite(principal); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan := &entity.SubscriptionPlan{
		Id:            uuid.New(),
		Name:          req.Name,
		Slug:          slugify(req.Name),
		Description:   req.Description,
		Price:         req.Price,
		TaxRate:       req.TaxRate,
		BillingPeriod: entity.BillingPeriod(req.BillingPeriod),
		TrialDays:     req.TrialDays,
		IsActive:      true,
		SortOrder:     req.SortOrder,
	}
	if err := uow.SubscriptionRepository().CreatePlan(ctx, plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

func (s *paymentService) UpdatePlan(ctx context.Context, principal authz.Principal, planId uuid.UUID, req *dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	if err := authz.PlanManage.CanWrite(principal); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.SubscriptionRepository().FindOnePlan(ctx, specification.ByID{ID: planId})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperr.NotFound("plan")
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.Price != nil {
		plan.Price = *req.Price
	}
	if req.TaxRate != nil {
		plan.TaxRate = *req.TaxRate
	}
	if req.TrialDays != nil {
		plan.TrialDays = *req.TrialDays
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		plan.SortOrder = *req.SortOrder
	}

	if err := uow.SubscriptionRepository().UpdatePlan(ctx, plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

func (s *paymentService) SetPlanActive(ctx context.Context, principal authz.Principal, planId uuid.UUID, active bool) error {
	if err := authz.PlanManage.CanWrite(principal); err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.SubscriptionRepository().FindOnePlan(ctx, specification.ByID{ID: planId})
	if err != nil {
		return err
	}
	if plan == nil {
		return apperr.NotFound("plan")
	}

	return uow.SubscriptionRepository().SetPlanActive(ctx, planId, active)
}
