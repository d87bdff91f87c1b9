package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v82"
	stripeclient "github.com/stripe/stripe-go/v82/client"

	"stylegenie-backend/config"
	"stylegenie-backend/utils"
)

// CheckoutController relays checkout-session creation to the payment
// provider. The price lives server-side; the client sends nothing and
// gets back a redirect URL. Any provider failure aborts with an alert
// status and no retry.
type CheckoutController struct {
	api         *stripeclient.API
	priceID     string
	frontendURL string
}

func NewCheckoutController(cfg config.Config) *CheckoutController {
	api := &stripeclient.API{}
	api.Init(cfg.StripeSecretKey, nil)
	return &CheckoutController{
		api:         api,
		priceID:     cfg.StripePriceIDPro,
		frontendURL: cfg.FrontendURL,
	}
}

// CreateCheckoutSession starts a subscription checkout and returns the
// provider's redirect URL.
func (ctl *CheckoutController) CreateCheckoutSession(c *gin.Context) {
	if ctl.priceID == "" {
		utils.RespondWithError(c, http.StatusBadGateway, "Checkout is not configured")
		return
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(ctl.priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(ctl.frontendURL + "/success"),
		CancelURL:  stripe.String(ctl.frontendURL + "/cancel"),
	}

	session, err := ctl.api.CheckoutSessions.New(params)
	if err != nil {
		log.Printf("Error creating checkout session: %v", err)
		utils.RespondWithError(c, http.StatusBadGateway, "Unable to start checkout. Please try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": session.URL})
}
