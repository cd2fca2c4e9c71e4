// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"encoding/json"

	"fdoconf/cli/internal/keychain"

	"github.com/rs/zerolog/log"
)

// Load reads the auth state from the keychain. Missing state yields zero value.
func Load() (State, error) {
	var s State
	km, err := keychain.GetManager()
	if err != nil {
		log.Debug().Err(err).Msg("auth.Load: keychain unavailable")
		return s, err
	}

	data, err := km.LoadAuthState()
	if err != nil {
		log.Debug().Err(err).Msg("auth.Load: LoadAuthState failed")
		return s, err
	}
	if len(data) == 0 {
		log.Debug().Msg("auth.Load: no auth state stored")
		return s, nil
	}

	if err := json.Unmarshal(data, &s); err != nil {
		log.Debug().Err(err).Int("length", len(data)).Msg("auth.Load: unmarshal failed")
		return s, err
	}

	log.Debug().Bool("logged_in", s.LoggedIn).Str("account", s.Account).Msg("auth.Load")
	return s, nil
}

// Save writes the auth state to the keychain.
func Save(s State) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	km, err := keychain.GetManager()
	if err != nil {
		log.Debug().Err(err).Msg("auth.Save: keychain unavailable")
		return err
	}

	if err := km.SaveAuthState(b); err != nil {
		log.Debug().Err(err).Msg("auth.Save: SaveAuthState failed")
		return err
	}

	log.Debug().Bool("logged_in", s.LoggedIn).Str("account", s.Account).Msg("auth.Save")
	return nil
}

// Clear removes the auth state from the keychain.
func Clear() error {
	km, err := keychain.GetManager()
	if err != nil {
		return err
	}
	return km.ClearAuthState()
}
