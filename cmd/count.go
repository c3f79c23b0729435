package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yamad/kmer-count/config"
	"github.com/yamad/kmer-count/internal/kmer"
	"github.com/yamad/kmer-count/internal/pipeline"
	"github.com/yamad/kmer-count/internal/seq"
)

// countCmd represents the count command
var countCmd = &cobra.Command{
	Use:   "count [directory]",
	Short: "Count k-mer frequencies for every FASTA file under a directory",
	Long: `Count the frequency of every k-mer (substring of length k) in each FASTA
file found under a directory, writing one frequency table per input file
into a mirrored output tree.

Files are selected by extension (gzip-compressed inputs are read
transparently), each is processed independently, and every output table is
a deterministic tab-separated listing of (kmer, count) pairs.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runCount,
}

func runCount(cmd *cobra.Command, args []string) {
	conf, err := config.New()
	if err != nil {
		logger.Fatal(err)
	}

	inputRoot := "."
	if len(args) > 0 {
		inputRoot = args[0]
	}

	alphabet := seq.DNA
	if conf.AllowN {
		alphabet = seq.DNAWithN
	}

	results, err := pipeline.Run(cmd.Context(), pipeline.Config{
		K:          conf.K,
		Extensions: conf.Extensions,
		InputRoot:  inputRoot,
		OutputRoot: conf.OutputRoot,
		OnInvalid:  pipeline.Policy(conf.OnInvalid),
		Sort:       kmer.Order(conf.Sort),
		Alphabet:   alphabet,
		Threads:    conf.Threads,
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal(err)
	}

	var total uint64
	for _, res := range results {
		total += res.Kmers
	}
	logger.Info("done", "files", len(results), "kmers", total)
}

// set flags
func init() {
	RootCmd.AddCommand(countCmd)

	countCmd.Flags().IntP("k", "k", 0, "length of k-mer to count")
	countCmd.Flags().StringSliceP("extensions", "e", []string{"fa", "fasta"}, "input file extensions to find")
	countCmd.Flags().StringP("out", "o", "./output", "output directory root")
	countCmd.Flags().String("on-invalid", "skip", "policy for records with invalid bases: skip or abort")
	countCmd.Flags().String("sort", "alpha", "output order: alpha or freq")
	countCmd.Flags().Bool("allow-n", false, "accept the ambiguity code 'N' as a valid base")
	countCmd.Flags().Int("threads", runtime.NumCPU(), "number of files to process concurrently")

	countCmd.MarkFlagRequired("k")

	// Bind the parameters to viper
	viper.BindPFlag("k", countCmd.Flags().Lookup("k"))
	viper.BindPFlag("extensions", countCmd.Flags().Lookup("extensions"))
	viper.BindPFlag("out", countCmd.Flags().Lookup("out"))
	viper.BindPFlag("on-invalid", countCmd.Flags().Lookup("on-invalid"))
	viper.BindPFlag("sort", countCmd.Flags().Lookup("sort"))
	viper.BindPFlag("allow-n", countCmd.Flags().Lookup("allow-n"))
	viper.BindPFlag("threads", countCmd.Flags().Lookup("threads"))
}
