package checkout

import "payswitch/internal/connector"

// errorTypes classifies Checkout's documented error codes for priority
// selection. Codes missing here fall through to UnknownError.
var errorTypes = map[string]connector.ErrorType{
	"action_failure_limit_exceeded":                   connector.BusinessError,
	"address_invalid":                                 connector.UserError,
	"amount_exceeds_balance":                          connector.BusinessError,
	"amount_invalid":                                  connector.UserError,
	"api_calls_quota_exceeded":                        connector.TechnicalError,
	"billing_descriptor_city_invalid":                 connector.UserError,
	"billing_descriptor_city_required":                connector.UserError,
	"billing_descriptor_name_invalid":                 connector.UserError,
	"billing_descriptor_name_required":                connector.UserError,
	"business_invalid":                                connector.BusinessError,
	"business_settings_missing":                       connector.BusinessError,
	"capture_value_greater_than_authorized":           connector.BusinessError,
	"capture_value_greater_than_remaining_authorized": connector.BusinessError,
	"card_authorization_failed":                       connector.UserError,
	"card_disabled":                                   connector.UserError,
	"card_expired":                                    connector.UserError,
	"card_expiry_month_invalid":                       connector.UserError,
	"card_expiry_month_required":                      connector.UserError,
	"card_expiry_year_invalid":                        connector.UserError,
	"card_expiry_year_required":                       connector.UserError,
	"card_holder_invalid":                             connector.UserError,
	"card_not_found":                                  connector.UserError,
	"card_number_invalid":                             connector.UserError,
	"card_number_required":                            connector.UserError,
	"channel_details_invalid":                         connector.BusinessError,
	"channel_url_missing":                             connector.BusinessError,
	"charge_details_invalid":                          connector.BusinessError,
	"city_invalid":                                    connector.BusinessError,
	"country_address_invalid":                         connector.UserError,
	"country_invalid":                                 connector.UserError,
	"country_phone_code_invalid":                      connector.UserError,
	"country_phone_code_length_invalid":               connector.UserError,
	"currency_invalid":                                connector.UserError,
	"currency_required":                               connector.UserError,
	"customer_already_exists":                         connector.BusinessError,
	"customer_email_invalid":                          connector.UserError,
	"customer_id_invalid":                             connector.BusinessError,
	"customer_not_found":                              connector.BusinessError,
	"customer_number_invalid":                         connector.UserError,
	"customer_plan_edit_failed":                       connector.BusinessError,
	"customer_plan_id_invalid":                        connector.BusinessError,
	"cvv_invalid":                                     connector.UserError,
	"email_in_use":                                    connector.BusinessError,
	"email_invalid":                                   connector.UserError,
	"email_required":                                  connector.UserError,
	"endpoint_invalid":                                connector.TechnicalError,
	"expiry_date_format_invalid":                      connector.UserError,
	"fail_url_invalid":                                connector.TechnicalError,
	"first_name_required":                             connector.UserError,
	"last_name_required":                              connector.UserError,
	"ip_address_invalid":                              connector.UserError,
	"issuer_network_unavailable":                      connector.TechnicalError,
	"metadata_key_invalid":                            connector.BusinessError,
	"parameter_invalid":                               connector.UserError,
	"password_invalid":                                connector.UserError,
	"payment_expired":                                 connector.BusinessError,
	"payment_invalid":                                 connector.BusinessError,
	"payment_method_invalid":                          connector.UserError,
	"payment_source_required":                         connector.UserError,
	"payment_type_invalid":                            connector.UserError,
	"phone_number_invalid":                            connector.UserError,
	"phone_number_length_invalid":                     connector.UserError,
	"previous_payment_id_invalid":                     connector.BusinessError,
	"recipient_account_number_invalid":                connector.BusinessError,
	"recipient_account_number_required":               connector.UserError,
	"recipient_dob_required":                          connector.UserError,
	"recipient_last_name_required":                    connector.UserError,
	"recipient_zip_invalid":                           connector.UserError,
	"recipient_zip_required":                          connector.UserError,
	"recurring_plan_exists":                           connector.BusinessError,
	"recurring_plan_not_exist":                        connector.BusinessError,
	"recurring_plan_removal_failed":                   connector.BusinessError,
	"request_invalid":                                 connector.UserError,
	"request_json_invalid":                            connector.UserError,
	"risk_enabled_required":                           connector.BusinessError,
	"server_api_not_allowed":                          connector.TechnicalError,
	"source_email_invalid":                            connector.UserError,
	"source_email_required":                           connector.UserError,
	"source_id_invalid":                               connector.BusinessError,
	"source_id_or_email_required":                     connector.UserError,
	"source_id_required":                              connector.UserError,
	"source_id_unknown":                               connector.BusinessError,
	"source_invalid":                                  connector.BusinessError,
	"source_or_destination_required":                  connector.BusinessError,
	"source_token_invalid":                            connector.BusinessError,
	"source_token_required":                           connector.UserError,
	"source_token_type_required":                      connector.UserError,
	"source_token_type_invalid":                       connector.BusinessError,
	"source_type_required":                            connector.UserError,
	"sub_entities_count_invalid":                      connector.BusinessError,
	"success_url_invalid":                             connector.BusinessError,
	"3ds_malfunction":                                 connector.TechnicalError,
	"3ds_not_configured":                              connector.BusinessError,
	"3ds_not_enabled_for_card":                        connector.BusinessError,
	"3ds_not_supported":                               connector.BusinessError,
	"3ds_payment_required":                            connector.BusinessError,
	"token_expired":                                   connector.BusinessError,
	"token_in_use":                                    connector.BusinessError,
	"token_invalid":                                   connector.BusinessError,
	"token_required":                                  connector.UserError,
	"token_type_required":                             connector.UserError,
	"token_used":                                      connector.BusinessError,
	"void_amount_invalid":                             connector.BusinessError,
	"wallet_id_invalid":                               connector.BusinessError,
	"zip_invalid":                                     connector.UserError,
	"processing_key_required":                         connector.BusinessError,
	"processing_value_required":                       connector.BusinessError,
	"3ds_version_invalid":                             connector.BusinessError,
	"3ds_version_not_supported":                       connector.BusinessError,
	"processing_error":                                connector.TechnicalError,
	"service_unavailable":                             connector.TechnicalError,
	"token_type_invalid":                              connector.UserError,
	"token_data_invalid":                              connector.UserError,
}

// ErrorType classifies one Checkout error code.
func (c *Checkout) ErrorType(errorCode, _ string) connector.ErrorType {
	if t, ok := errorTypes[errorCode]; ok {
		return t
	}
	return connector.UnknownError
}
