package config

import (
	"github.com/goodsign/monday"
	"github.com/spf13/viper"
)

var (
	KeyContentDirectory = "content.directory"
	KeyBuildDirectory   = "build.directory"
	KeyServeAddress     = "serve.address"
	KeyLocale           = "render.locale"
	KeyVerbose          = "verbose"
)

func SetDefaults() {
	viper.SetDefault(KeyBuildDirectory, DefaultBuildDirectory())
	viper.SetDefault(KeyServeAddress, DefaultServeAddress())
	viper.SetDefault(KeyLocale, string(monday.LocaleEnUS))
}

func HasContentDirectory() bool {
	return viper.IsSet(KeyContentDirectory)
}

func ContentDirectory() string {
	return viper.GetString(KeyContentDirectory)
}

func HasBuildDirectory() bool {
	return viper.IsSet(KeyBuildDirectory)
}

func BuildDirectory() string {
	return viper.GetString(KeyBuildDirectory)
}

func ServeAddress() string {
	return viper.GetString(KeyServeAddress)
}

func Locale() monday.Locale {
	return monday.Locale(viper.GetString(KeyLocale))
}

func Verbose() bool {
	return viper.GetBool(KeyVerbose)
}

func DefaultBuildDirectory() string {
	return "public"
}

func DefaultServeAddress() string {
	return ":8000"
}

var KeyEditor = "tools.editor"

func HasEditor() bool {
	return viper.IsSet(KeyEditor)
}

func Editor() string {
	return viper.GetString(KeyEditor)
}
