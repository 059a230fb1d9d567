package config

import (
	"blackjack/internal/util"
	"github.com/stretchr/testify/assert"
	"os"
	"testing"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("BLACKJACK_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("BLACKJACK_RNG_SEED", "7")
	defer clear2()

	config = Config{}

	a := assert.New(t)
	cfg := Instance()
	a.Equal(16, cfg.Dealer.StandThreshold)
	a.Equal("seeded", cfg.RNG.Source)
	a.Equal(int64(7), cfg.RNG.Seed)
	a.Equal("debug", cfg.Log.Level)
	a.Equal("text", cfg.Log.Format)
	a.False(cfg.Display.Color)

	// ensure that it's only loaded once
	_ = os.Setenv("BLACKJACK_RNG_SEED", "8")
	// ensure we aren't using a pointer
	cfg.RNG.Seed = 99
	cfg = Instance()
	a.Equal(int64(7), cfg.RNG.Seed)
}

func TestLoad_env(t *testing.T) {
	clear1 := util.SetEnv("BLACKJACK_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("BLACKJACK_DEALER_STAND_THRESHOLD", "17")
	defer clear2()
	clear3 := util.SetEnv("BLACKJACK_LOG_FORMAT", "json")
	defer clear3()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal(17, cfg.Dealer.StandThreshold)
	a.Equal("json", cfg.Log.Format)
}

func TestDefaults(t *testing.T) {
	clear1 := util.SetEnv("BLACKJACK_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, DefaultConfig().Dealer.StandThreshold, cfg.Dealer.StandThreshold)
	assert.Equal(t, 15, cfg.Dealer.StandThreshold)
	assert.Equal(t, "crypto", cfg.RNG.Source)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Display.Color)
}

func TestLoad_badEnv(t *testing.T) {
	clear1 := util.SetEnv("BLACKJACK_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()
	clear2 := util.SetEnv("BLACKJACK_DEALER_STAND_THRESHOLD", "lots")
	defer clear2()

	assert.Error(t, Load())
}
