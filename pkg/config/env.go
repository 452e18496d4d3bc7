package config

const (
	EnvPrefix = "PAYMITRA"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv     = "PAYMITRA_APP_ENV"
	EnvPort       = "PAYMITRA_APP_PORT"
	EnvDBPath     = "PAYMITRA_DB_PATH"
	EnvCouponCode = "PAYMITRA_COUPON_CODE"
	EnvCouponRate = "PAYMITRA_COUPON_RATE"
)
