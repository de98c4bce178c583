package main

import (
	"fmt"
	"strconv"

	"github.com/TomTonic/jrandom"
	"github.com/spf13/cobra"
)

// slimeCmd represents the slime command
var slimeCmd = &cobra.Command{
	Use:   "slime <x> <z>",
	Short: "Check whether a chunk is a slime chunk",
	Long: `Check whether the chunk at the given chunk coordinates is a slime chunk in a
Minecraft world with the given world seed, for example:
  jrandom slime --seed=12345 -- -3 7`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		worldSeed, ok := seed()
		if !ok {
			return fmt.Errorf("a world seed is required, use --seed or JRANDOM_SEED")
		}
		x, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid x coordinate: %w", err)
		}
		z, err := strconv.ParseInt(args[1], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid z coordinate: %w", err)
		}
		if isSlimeChunk(worldSeed, int32(x), int32(z)) {
			fmt.Fprintln(cmd.OutOrStdout(), "Chunk is slimechunk")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Chunk is not slimechunk")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(slimeCmd)
}

// slimeChunkSeed mixes the chunk coordinates into the world seed. The int32 products
// overflow on purpose.
func slimeChunkSeed(worldSeed int64, x, z int32) int64 {
	return (worldSeed +
		int64(x*x*0x4c1906) +
		int64(x*0x5ac0db) +
		int64(z*z)*0x4307a7 +
		int64(z*0x5f24f)) ^ 0x3ad8025f
}

func isSlimeChunk(worldSeed int64, x, z int32) bool {
	return jrandom.NewRandom(slimeChunkSeed(worldSeed, x, z)).Int32N(10) == 0
}
