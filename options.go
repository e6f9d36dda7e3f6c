// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package typedist

// Option configures the construction of a snapshot.
type Option func(*config)

type config struct {
	band int
}

// Band sets the initial band half-width. The default is [DefaultBand].
// Negative values are a programmer error and panic.
func Band(w int) Option {
	return func(cfg *config) {
		if w < 0 {
			panic("typedist: negative band half-width")
		}
		cfg.band = w
	}
}

func applyOptions(opts []Option) config {
	cfg := config{band: DefaultBand}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
