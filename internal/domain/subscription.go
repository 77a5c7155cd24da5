package domain

// Plan is a subscription tier.
type Plan string

const (
	PlanFree   Plan = "free"
	PlanBronze Plan = "bronze"
	PlanSilver Plan = "silver"
	PlanGold   Plan = "gold"
)

// UnlimitedTweets is the stored quota sentinel for gold accounts.
// Enforcement checks the plan before the counter, so the sentinel is
// never read as a count.
const UnlimitedTweets = -1

// planQuotas maps each tier to the tweets granted on purchase (and on
// each quota reset). Gold is unlimited.
var planQuotas = map[Plan]int{
	PlanFree:   1,
	PlanBronze: 3,
	PlanSilver: 5,
	PlanGold:   UnlimitedTweets,
}

// planPrices is the amount charged per tier, in INR.
var planPrices = map[Plan]int{
	PlanBronze: 100,
	PlanSilver: 300,
	PlanGold:   1000,
}

// Valid reports whether p is a known tier.
func (p Plan) Valid() bool {
	_, ok := planQuotas[p]
	return ok
}

// Quota returns the tweet allowance for the plan. Unknown tiers get the
// free allowance, to fail safe.
func (p Plan) Quota() int {
	if q, ok := planQuotas[p]; ok {
		return q
	}
	return planQuotas[PlanFree]
}

// Price returns the charge for the plan in INR. Free (and unknown) is 0.
func (p Plan) Price() int {
	return planPrices[p]
}

// Subscription is the value object attached to a user.
type Subscription struct {
	Plan            Plan
	TweetsRemaining int
}

// DefaultSubscription is what new accounts start on.
func DefaultSubscription() Subscription {
	return Subscription{Plan: PlanFree, TweetsRemaining: planQuotas[PlanFree]}
}

// NewSubscription returns the subscription a purchase of plan grants.
func NewSubscription(plan Plan) Subscription {
	return Subscription{Plan: plan, TweetsRemaining: plan.Quota()}
}

// CanPost reports whether the account may create another tweet:
// gold always, anyone else while tweets remain.
func (s Subscription) CanPost() bool {
	return s.Plan == PlanGold || s.TweetsRemaining > 0
}

// RecordPost consumes one tweet from the quota. Gold is untouched.
// Call only after the tweet write succeeded.
func (s *Subscription) RecordPost() {
	if s.Plan == PlanGold {
		return
	}
	s.TweetsRemaining--
}
