package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

func main() {
	cfg := LoadConfig()

	if err := InitAuditDB(cfg.DBPath); err != nil {
		log.Fatalf("Failed to init audit database: %v", err)
	}

	complete := newCompleter(cfg)
	session := &SessionState{}
	in := bufio.NewReader(os.Stdin)

	log.Println("Starting incident comms demo...")

	role, err := ParseRole(readLine(in, "Your role (commander/support/legal): "))
	if err != nil {
		log.Fatalf("%v", err)
	}

	for {
		req := IncidentRequest{
			Severity:   readLine(in, "Incident severity (P0-P3): "),
			Components: readLine(in, "Impacted components: "),
			ETA:        readLine(in, "ETA for resolution: "),
		}

		result, err := RunCycle(cfg, complete, session, req)
		if errors.Is(err, ErrValidation) {
			fmt.Printf("⚠ %v\n", err)
			continue
		}
		if err != nil {
			fmt.Printf("Generation failed: %v\n", err)
			if !askYesNo(in, "Try again? (y/n): ") {
				break
			}
			continue
		}

		printCycle(result)

		if askYesNo(in, "Leave feedback? (y/n): ") {
			rating, _ := strconv.Atoi(readLine(in, "Rating (1-5): "))
			comment := readLine(in, "Comment: ")
			if err := result.AttachFeedback(session, rating, comment); err != nil {
				fmt.Printf("⚠ %v\n", err)
			}
		}

		if cfg.publishConfigured() && askYesNo(in, "Publish customer update? (y/n): ") {
			if err := PublishCustomerUpdate(cfg, role, result.Draft.Customer); err != nil {
				fmt.Printf("⚠ %v\n", err)
			} else {
				fmt.Println("Published.")
			}
		}

		if _, err := FinalizeCycle(cfg, result); err != nil {
			fmt.Printf("Failed to persist audit record: %v\n", err)
		}

		printSessionMetrics(session)

		if !askYesNo(in, "Generate another? (y/n): ") {
			break
		}
	}
}

func printCycle(r *CycleResult) {
	fmt.Println("\n== Internal Summary ==")
	fmt.Println(r.Draft.Internal)
	fmt.Println("\n== Customer Update ==")
	fmt.Println(r.Draft.Customer)
	if !r.Draft.ParseOK {
		fmt.Println("(draft could not be split into sections; showing raw text)")
	}

	fmt.Printf("\nGen latency: %.1fs | Word count: %d | Accuracy: %d/100 | Tone: %d/100\n",
		r.Prod.Latency.Seconds(), r.WordCount, r.Prod.Accuracy, r.Prod.Tone)
	if r.Prod.Degraded {
		fmt.Println("(judge output was unparseable; scores degraded to 0)")
	}

	if r.Verdict != nil {
		v := r.Verdict
		fmt.Printf("Shadow: accuracy %d/100 at %.1fs — ", v.Shadow.Accuracy, v.Shadow.Latency.Seconds())
		if v.ShadowWins {
			fmt.Printf("shadow wins (accuracy +%d, %s faster)\n",
				v.AccuracyGap, v.LatencyGap.Round(100*time.Millisecond))
		} else {
			fmt.Println("production stays ahead")
		}
	}
}

func printSessionMetrics(s *SessionState) {
	fmt.Printf("\nSession: drafts=%d tokens=%d", len(s.ToneScores), s.Usage.TotalTokens())
	if avgRating, avgDissim, n := s.FeedbackAverages(); n > 0 {
		fmt.Printf(" reviews=%d avg_rating=%.1f avg_dissimilarity=%.2f", n, avgRating, avgDissim)
	}
	fmt.Println()
}

func readLine(in *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

func askYesNo(in *bufio.Reader, prompt string) bool {
	answer := strings.ToLower(readLine(in, prompt))
	return answer == "y" || answer == "yes"
}
