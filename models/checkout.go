package models

type CheckoutStep string

const (
	StepBag      CheckoutStep = "bag"
	StepShipping CheckoutStep = "shipping"
	StepPayment  CheckoutStep = "payment"
)
