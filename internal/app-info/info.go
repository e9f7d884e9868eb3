package app_info

// NAME auto-generated app name
const NAME = "craftstat"

// VERSION auto-generated app version
const VERSION = "v0.3.0"
