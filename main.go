package main

import (
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/lost-woods/sampler/src/rng"
	"github.com/lost-woods/sampler/src/server"
)

func main() {
	zapLogger, _ := zap.NewProduction()
	defer zapLogger.Sync()
	log := zapLogger.Sugar()

	port := os.Getenv("PORT")
	if port == "" {
		port = "777"
	}

	e, h := newEntropy(log)
	e = rng.NewLockedSource(e)

	log.Infow("starting sampler service", "port", port)
	server.New(port, e, h, log).RunOrDie()
}

// newEntropy selects the entropy source from RNG_SOURCE: "serial" (default)
// opens the hardware device, "prng" runs a seeded pseudo source (RNG_SEED,
// wall clock when unset).
func newEntropy(log *zap.SugaredLogger) (rng.Entropy, *rng.Health) {
	switch os.Getenv("RNG_SOURCE") {
	case "prng":
		h := rng.NewHealth()
		h.Set(true, "")

		if seedStr := os.Getenv("RNG_SEED"); seedStr != "" {
			seed, err := strconv.ParseUint(seedStr, 10, 64)
			if err != nil {
				log.Fatalw("invalid RNG_SEED", "value", seedStr, "err", err)
			}
			log.Infow("using seeded pseudo-random source", "seed", seed)
			return rng.NewSeededPRNGSource(seed), h
		}

		log.Info("using clock-seeded pseudo-random source")
		return rng.NewPRNGSource(), h

	default:
		e, h, err := rng.NewSerialEntropyFromEnv()
		if err != nil {
			log.Fatalw("opening serial entropy source", "err", err)
		}
		return e, h
	}
}
