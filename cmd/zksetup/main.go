/*
Copyright © 2020 ConsenSys

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// zksetup runs a Groth16 trusted setup for an encoded R1CS file and
// writes out the resulting proving and verifying keys.
//
// usage: zksetup r1cs_file pk_file vk_file
package main

import (
	"os"

	"github.com/Saudadeeee/zk-snark/encoding"
	"github.com/Saudadeeee/zk-snark/entropy"
	"github.com/Saudadeeee/zk-snark/groth16"
	"github.com/Saudadeeee/zk-snark/internal/zklog"
)

func main() {
	log := zklog.Named("zksetup")

	if len(os.Args) != 4 {
		log.Error().Msg("usage: zksetup r1cs_file pk_file vk_file")
		os.Exit(1)
	}
	r1csFile, pkFile, vkFile := os.Args[1], os.Args[2], os.Args[3]

	raw, err := os.ReadFile(r1csFile)
	if err != nil {
		log.Error().Err(err).Str("file", r1csFile).Msg("reading r1cs")
		os.Exit(1)
	}
	sys, err := encoding.DecodeR1CS(raw)
	if err != nil {
		log.Error().Err(err).Msg("decoding r1cs")
		os.Exit(1)
	}

	pk, vk, err := groth16.Setup(sys, entropy.OS())
	if err != nil {
		log.Error().Err(err).Msg("setup")
		os.Exit(1)
	}

	if err := os.WriteFile(pkFile, encoding.EncodeProvingKey(pk), 0o600); err != nil {
		log.Error().Err(err).Str("file", pkFile).Msg("writing proving key")
		os.Exit(1)
	}
	if err := os.WriteFile(vkFile, encoding.EncodeVerifyingKey(vk), 0o600); err != nil {
		log.Error().Err(err).Str("file", vkFile).Msg("writing verifying key")
		os.Exit(1)
	}

	log.Info().Str("pk", pkFile).Str("vk", vkFile).Msg("setup complete")
}
