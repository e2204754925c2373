package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"workhub_backend/internal/models"
)

var customRuleMessages = map[string]string{}

func registerCustomRules(v *validator.Validate) {
	registerEnumRule(v, "is-business-status", models.AllowedBusinessStatuses)
	registerEnumRule(v, "is-job-status", models.AllowedJobStatuses)
	registerEnumRule(v, "is-article-status", models.AllowedArticleStatuses)
	registerEnumRule(v, "is-event-status", models.AllowedEventStatuses)
	registerEnumRule(v, "is-payment-decision", models.AllowedPaymentDecisions)
	registerEnumRule(v, "is-application-method", []string{
		string(models.ApplicationMethodPlatform),
		string(models.ApplicationMethodExternal),
	})
	registerEnumRule(v, "is-employment-type", []string{
		"FULL_TIME", "PART_TIME", "CONTRACT", "INTERNSHIP", "FREELANCE",
	})
}

// registerEnumRule installs a membership check plus its error message.
func registerEnumRule(v *validator.Validate, tag string, allowed []string) {
	customRuleMessages[tag] = fmt.Sprintf("Must be one of: %s", strings.Join(allowed, ", "))

	_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, a := range allowed {
			if value == a {
				return true
			}
		}
		return false
	})
}
