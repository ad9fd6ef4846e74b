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

// zkprove builds a Groth16 proof from an R1CS, a proving key, and a
// witness split across two CSV files.
//
// usage: zkprove r1cs_file pk_file public_csv private_csv proof_file
//
// public_csv holds one decimal Fr value per public variable in
// ascending index order (excluding the implicit constant-one wire);
// private_csv holds one decimal Fr value per private variable, also in
// ascending index order.
package main

import (
	"context"
	"os"

	"github.com/Saudadeeee/zk-snark/encoding"
	"github.com/Saudadeeee/zk-snark/entropy"
	"github.com/Saudadeeee/zk-snark/field"
	"github.com/Saudadeeee/zk-snark/groth16"
	"github.com/Saudadeeee/zk-snark/internal/csvutil"
	"github.com/Saudadeeee/zk-snark/internal/zklog"
	"github.com/Saudadeeee/zk-snark/qap"
)

func main() {
	log := zklog.Named("zkprove")

	if len(os.Args) != 6 {
		log.Error().Msg("usage: zkprove r1cs_file pk_file public_csv private_csv proof_file")
		os.Exit(1)
	}
	r1csFile, pkFile, publicCSV, privateCSV, proofFile := os.Args[1], os.Args[2], os.Args[3], os.Args[4], os.Args[5]

	r1csBytes, err := os.ReadFile(r1csFile)
	if err != nil {
		log.Error().Err(err).Msg("reading r1cs")
		os.Exit(1)
	}
	sys, err := encoding.DecodeR1CS(r1csBytes)
	if err != nil {
		log.Error().Err(err).Msg("decoding r1cs")
		os.Exit(1)
	}

	pkBytes, err := os.ReadFile(pkFile)
	if err != nil {
		log.Error().Err(err).Msg("reading proving key")
		os.Exit(1)
	}
	pk, err := encoding.DecodeProvingKey(pkBytes)
	if err != nil {
		log.Error().Err(err).Msg("decoding proving key")
		os.Exit(1)
	}

	publicVals, err := csvutil.ReadFrFile(publicCSV)
	if err != nil {
		log.Error().Err(err).Msg("reading public csv")
		os.Exit(1)
	}
	privateVals, err := csvutil.ReadFrFile(privateCSV)
	if err != nil {
		log.Error().Err(err).Msg("reading private csv")
		os.Exit(1)
	}

	fullWitness := make([]field.Fr, pk.NumVars)
	fullWitness[0] = field.FrOne()
	pi, si := 0, 0
	for i := 1; i < pk.NumVars; i++ {
		if pk.PrivateMask[i] {
			if si >= len(privateVals) {
				log.Error().Msg("private csv has too few values")
				os.Exit(1)
			}
			fullWitness[i] = privateVals[si]
			si++
		} else {
			if pi >= len(publicVals) {
				log.Error().Msg("public csv has too few values")
				os.Exit(1)
			}
			fullWitness[i] = publicVals[pi]
			pi++
		}
	}

	q, err := qap.FromR1CS(context.Background(), sys)
	if err != nil {
		log.Error().Err(err).Msg("building qap")
		os.Exit(1)
	}

	proof, err := groth16.Prove(pk, q, fullWitness, entropy.OS())
	if err != nil {
		log.Error().Err(err).Msg("proving")
		os.Exit(1)
	}

	if err := os.WriteFile(proofFile, encoding.EncodeProof(proof), 0o600); err != nil {
		log.Error().Err(err).Msg("writing proof")
		os.Exit(1)
	}

	log.Info().Str("proof", proofFile).Msg("prove complete")
}
