package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jswitzer/quillgen/pkg/assistant"
	"github.com/jswitzer/quillgen/pkg/ngram"
)

func main() {
	var (
		trainDir    = pflag.StringP("train", "t", "", "train the model on .txt book files in a directory")
		sample      = pflag.BoolP("sample", "s", false, "create sample books and train the model on them")
		interactive = pflag.BoolP("interactive", "i", false, "start an interactive session")
		message     = pflag.StringP("message", "m", "", "send a single message and print the response")
		generate    = pflag.StringP("generate", "g", "", "generate text from a prompt and print it")
		suggest     = pflag.String("suggest", "", "print next-word suggestions for a text context")
		modelPath   = pflag.StringP("model", "M", "trained_model.json", "path to the saved model file")
		savePath    = pflag.StringP("save-model", "S", "", "path to save the trained model (defaults to --model)")
		ngramSize   = pflag.Int("ngram-size", ngram.DefaultNGramSize, "n-gram size for a freshly created model")
		minCount    = pflag.Int("min-count", ngram.DefaultMinCount, "vocabulary frequency threshold for a fresh model")
		maxTokens   = pflag.Int("max-tokens", 50, "token budget for --generate")
		temperature = pflag.Float64("temperature", 0.8, "sampling temperature for --generate")
		seed        = pflag.Uint64("seed", 0, "seed the model's random source for reproducible output")
		verbose     = pflag.BoolP("verbose", "v", false, "enable debug logging")
	)
	pflag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	asst := assistant.New(openModel(*modelPath, *ngramSize, *minCount, *seed, logger))
	asst.SetLogger(logger)

	ran := false

	if *sample {
		trainModel(asst, "sample_books", orDefault(*savePath, *modelPath))
		ran = true
	}

	if *trainDir != "" {
		trainModel(asst, *trainDir, orDefault(*savePath, *modelPath))
		ran = true
	}

	if *generate != "" {
		fmt.Println(asst.Generate(*generate, *maxTokens, *temperature))
		ran = true
	}

	if *suggest != "" {
		printSuggestions(asst, *suggest)
		ran = true
	}

	if *message != "" {
		fmt.Printf("AI: %s\n", asst.Chat(*message))
		ran = true
	}

	if *interactive || !ran {
		runInteractive(asst, *modelPath)
	}
}

// openModel loads an existing model file when present, and otherwise
// creates a fresh untrained model.
func openModel(path string, ngramSize, minCount int, seed uint64, logger *slog.Logger) *ngram.Model {
	var opts []ngram.Option
	if pflag.CommandLine.Changed("seed") {
		opts = append(opts, ngram.WithSeed(seed))
	}

	if _, err := os.Stat(path); err == nil {
		model, err := ngram.Load(path, opts...)
		if err == nil {
			model.SetLogger(logger)
			fmt.Printf("Loaded existing model from %s\n", path)
			return model
		}
		fmt.Fprintf(os.Stderr, "Failed to load model from %s: %v\n", path, err)
	}

	fmt.Println("Initialized new model (no existing model found)")
	opts = append(opts, ngram.WithNGramSize(ngramSize), ngram.WithMinCount(minCount))
	model := ngram.New(opts...)
	model.SetLogger(logger)
	return model
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func trainModel(asst *assistant.Assistant, dir, savePath string) {
	fmt.Printf("Training model on books from: %s\n", dir)

	report, err := asst.TrainFromBooks(dir, savePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Training failed: %v\n", err)
		return
	}

	fmt.Println("\nTraining completed successfully!")
	fmt.Println("Training statistics:")
	fmt.Printf("  - Books processed: %d\n", report.Corpus.NumBooks)
	fmt.Printf("  - Total sentences: %d\n", report.Corpus.TotalSentences)
	fmt.Printf("  - Total words: %d\n", report.Corpus.TotalWords)
	fmt.Printf("  - Vocabulary size: %d\n", report.Model.VocabularySize)
	if savePath != "" {
		fmt.Printf("  - Model saved to: %s\n", savePath)
	}

	if len(report.Corpus.Books) > 0 {
		fmt.Println("\nBooks processed:")
		for _, b := range report.Corpus.Books {
			fmt.Printf("  - %s: %d sentences, %d words\n", b.Title, b.Sentences, b.Words)
		}
	}
}

func printSuggestions(asst *assistant.Assistant, context string) {
	suggestions := asst.Suggest(context, 5)
	if len(suggestions) == 0 {
		fmt.Println("No suggestions for that context.")
		return
	}
	for _, s := range suggestions {
		fmt.Printf("  %-20s %.4f\n", s.Token, s.Probability)
	}
}

func runInteractive(asst *assistant.Assistant, modelPath string) {
	fmt.Println("\nQuillgen - Interactive Mode")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("Type 'quit', 'exit', or 'bye' to end the conversation")
	fmt.Println("Type 'help' for available commands")
	fmt.Println(strings.Repeat("=", 50))

	if !asst.Model().IsTrained() {
		fmt.Println("Warning: model is not trained. Responses will be basic.")
		fmt.Println("Use 'train <directory>' or 'sample' to train the model first.")
	}

	fmt.Println("\nAI: Hello! I'm your book writing assistant. How can I help you today?")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			fmt.Println("\nAI: Goodbye! Happy writing!")
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		cmd, arg, _ := strings.Cut(input, " ")
		switch strings.ToLower(cmd) {
		case "quit", "exit", "bye":
			fmt.Println("\nAI: Goodbye! Happy writing!")
			return
		case "help":
			printHelp()
		case "status":
			printStatus(asst)
		case "train":
			arg = strings.TrimSpace(arg)
			if arg == "" {
				fmt.Println("Please specify a directory: train <directory>")
				continue
			}
			trainModel(asst, arg, modelPath)
		case "sample":
			trainModel(asst, "sample_books", modelPath)
		case "clear":
			asst.ClearHistory()
			fmt.Println("Conversation history cleared.")
		case "save":
			path := orDefault(strings.TrimSpace(arg), modelPath)
			if err := asst.SaveModel(path); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to save model: %v\n", err)
				continue
			}
			fmt.Printf("Model saved to: %s\n", path)
		case "load":
			path := orDefault(strings.TrimSpace(arg), modelPath)
			if err := asst.LoadModel(path); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to load model: %v\n", err)
				continue
			}
			fmt.Printf("Model loaded from: %s\n", path)
		default:
			fmt.Printf("\nAI: %s\n", asst.Chat(input))
		}
	}
}

func printHelp() {
	fmt.Println("\nAvailable commands:")
	fmt.Println("  help              - Show this help message")
	fmt.Println("  status            - Show model training status and statistics")
	fmt.Println("  train <directory> - Train model on .txt files in directory")
	fmt.Println("  sample            - Create sample books and train model")
	fmt.Println("  save [path]       - Save the model to disk")
	fmt.Println("  load [path]       - Load a model from disk")
	fmt.Println("  clear             - Clear conversation history")
	fmt.Println("  quit/exit/bye     - End conversation")
	fmt.Println("\nWriting assistant features:")
	fmt.Println("  - Ask me to continue text: 'Continue this: Once upon a time...'")
	fmt.Println("  - Request story generation: 'Generate a story about adventure'")
	fmt.Println("  - Get character ideas: 'Help me develop a character'")
	fmt.Println("  - Plot suggestions: 'Suggest a plot for my mystery novel'")
	fmt.Println("  - Writing style analysis: 'What writing style did you learn?'")
}

func printStatus(asst *assistant.Assistant) {
	status := asst.Status()

	fmt.Println("\nModel status:")
	fmt.Printf("  Trained: %t\n", status.Model.IsTrained)
	fmt.Printf("  Vocabulary size: %d words\n", status.Model.VocabularySize)
	fmt.Printf("  N-gram size: %d\n", status.Model.NGramSize)
	fmt.Printf("  Total patterns: %d\n", status.Model.TotalContexts)

	if len(status.Model.MostCommonWords) > 0 {
		words := make([]string, 0, 5)
		for _, wc := range status.Model.MostCommonWords {
			words = append(words, wc.Word)
			if len(words) == 5 {
				break
			}
		}
		fmt.Printf("  Top words: %s\n", strings.Join(words, ", "))
	}

	if status.Corpus.NumBooks > 0 {
		fmt.Println("\nTraining data:")
		fmt.Printf("  Books processed: %d\n", status.Corpus.NumBooks)
		fmt.Printf("  Total sentences: %d\n", status.Corpus.TotalSentences)
		fmt.Printf("  Total words: %d\n", status.Corpus.TotalWords)
	}

	fmt.Printf("\nConversation: %d messages\n", status.HistoryLength)
}
