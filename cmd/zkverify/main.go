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

// zkverify checks a Groth16 proof against a verifying key and a CSV of
// public inputs.
//
// usage: zkverify vk_file public_csv proof_file
//
// Exit code 0 means the proof verified; exit code 1 covers every other
// outcome, including a well-formed but invalid proof.
package main

import (
	"os"

	"github.com/Saudadeeee/zk-snark/encoding"
	"github.com/Saudadeeee/zk-snark/groth16"
	"github.com/Saudadeeee/zk-snark/internal/csvutil"
	"github.com/Saudadeeee/zk-snark/internal/zklog"
)

func main() {
	log := zklog.Named("zkverify")

	if len(os.Args) != 4 {
		log.Error().Msg("usage: zkverify vk_file public_csv proof_file")
		os.Exit(1)
	}
	vkFile, publicCSV, proofFile := os.Args[1], os.Args[2], os.Args[3]

	vkBytes, err := os.ReadFile(vkFile)
	if err != nil {
		log.Error().Err(err).Msg("reading verifying key")
		os.Exit(1)
	}
	vk, err := encoding.DecodeVerifyingKey(vkBytes)
	if err != nil {
		log.Error().Err(err).Msg("decoding verifying key")
		os.Exit(1)
	}

	publicVals, err := csvutil.ReadFrFile(publicCSV)
	if err != nil {
		log.Error().Err(err).Msg("reading public csv")
		os.Exit(1)
	}

	proofBytes, err := os.ReadFile(proofFile)
	if err != nil {
		log.Error().Err(err).Msg("reading proof")
		os.Exit(1)
	}
	proof, err := encoding.DecodeProof(proofBytes)
	if err != nil {
		log.Error().Err(err).Msg("decoding proof")
		os.Exit(1)
	}

	ok, err := groth16.Verify(vk, publicVals, proof)
	if err != nil {
		log.Error().Err(err).Msg("verify")
		os.Exit(1)
	}
	if !ok {
		log.Warn().Msg("proof did not verify")
		os.Exit(1)
	}

	log.Info().Msg("proof verified")
}
