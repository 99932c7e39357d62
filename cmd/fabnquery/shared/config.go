package shared

import (
	"strings"

	"github.com/spf13/viper"
	"github.com/timoth-y/fabnquery/pkg/fabric"
)

func init() {
	viper.SetDefault("fabric.identity", fabric.DefaultIdentity)
	viper.SetDefault("fabric.wallet_path", fabric.DefaultWalletPath())
	viper.SetDefault("fabric.connection_profile", fabric.DefaultProfilePath)
	viper.SetDefault("fabric.channel", fabric.DefaultChannel)
	viper.SetDefault("fabric.contract", fabric.DefaultContract)
	viper.SetDefault("fabric.query.function", fabric.DefaultFunction)
	viper.SetDefault("fabric.query.args", fabric.DefaultArgs())
	viper.SetDefault("fabric.discovery.enabled", false)
	viper.SetDefault("fabric.discovery.as_localhost", true)
	viper.SetDefault("fabric.timeout", "5m")

	viper.SetDefault("ssh.port", 22)

	viper.SetDefault("logging", "info")

	viper.SetDefault("cli.success_emoji", "✅")
	viper.SetDefault("cli.ok_emoji", "👌")
	viper.SetDefault("cli.error_emoji", "❌")
	viper.SetDefault("cli.warning_emoji", "⚠️")
	viper.SetDefault("cli.info_emoji", "ℹ️")
}

// InitConfig configures viper from environment variables and configuration files.
func InitConfig() {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetConfigType("yaml")
	viper.SetConfigName(".fabnquery")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME")

	_ = viper.ReadInConfig()

	initLogger()
}
