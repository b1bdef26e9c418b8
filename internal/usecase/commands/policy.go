package commands

import (
	"context"
	"log/slog"

	"barberbook/internal/domain/policy"
	"barberbook/internal/pkg/errs"
)

type PolicyCommands interface {
	SetDiscountLock(ctx context.Context, locked bool) (policy.DiscountPolicy, error)
	DiscountLock(ctx context.Context) policy.DiscountPolicy
}

type policyCommandsImpl struct {
	policies PolicyRepository
}

func NewPolicyCommands(policies PolicyRepository) PolicyCommands {
	return &policyCommandsImpl{policies: policies}
}

func (p *policyCommandsImpl) SetDiscountLock(ctx context.Context, locked bool) (policy.DiscountPolicy, error) {
	next := policy.Unlocked
	if locked {
		next = policy.Locked
	}
	if err := p.policies.SetDiscountPolicy(ctx, next); err != nil {
		return "", errs.Wrap(err, "failed to persist discount policy")
	}
	return next, nil
}

// DiscountLock never fails: an unreadable store means the documented default.
func (p *policyCommandsImpl) DiscountLock(ctx context.Context) policy.DiscountPolicy {
	current, err := p.policies.GetDiscountPolicy(ctx)
	if err != nil {
		slog.Warn("discount policy unreadable, defaulting to unlocked", "error", err.Error())
		return policy.Unlocked
	}
	return current
}
