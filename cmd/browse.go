package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wqr11/test-10x/internal/config"
	"github.com/wqr11/test-10x/internal/view"
)

const browseHelp = `Commands:
  tab KEY      click a category tab (MARKETING, MANAGEMENT, HR, DESIGN, DEVELOPMENT or all)
  search TEXT  type TEXT into the search field (empty TEXT clears it)
  load         click the load button
  list         show the displayed cards again
  html         print the cards container markup
  page         print the whole page
  help         show this help
  quit         leave the session`

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	Long: `Browse opens the catalog page and reads one interaction per line from stdin,
printing the displayed cards after each one.

` + browseHelp,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		store, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		ctrl, err := newSession(store, newLogger(cmd.ErrOrStderr()))
		if err != nil {
			return err
		}

		s := &browseSession{
			ctrl:    ctrl,
			out:     cmd.OutOrStdout(),
			printer: newCardPrinter(cmd.OutOrStdout(), cfg.UseColor()),
		}

		if handled, err := ctrl.ClickTabKey(cfg.DefaultTab); err != nil {
			return err
		} else if !handled {
			fmt.Fprintf(s.out, "No tab for category %q, showing every card.\n", cfg.DefaultTab)
		}
		s.printer.printCards(ctrl.DisplayedCards())

		in := cmd.InOrStdin()
		prompt := false
		if f, ok := in.(*os.File); ok {
			prompt = term.IsTerminal(int(f.Fd()))
		}
		return s.run(in, prompt)
	},
}

func init() {
	RootCmd.AddCommand(browseCmd)
}

type browseSession struct {
	ctrl    *view.Controller
	out     io.Writer
	printer *cardPrinter
}

func (s *browseSession) run(in io.Reader, prompt bool) error {
	scanner := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(s.out, "> ")
		}
		if !scanner.Scan() {
			break
		}

		quit, err := s.handle(scanner.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// handle runs one session command and reports whether the session should end
func (s *browseSession) handle(line string) (bool, error) {
	command, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(command) {
	case "":
		return false, nil
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(s.out, browseHelp)
	case "tab":
		handled, err := s.ctrl.ClickTabKey(arg)
		if err != nil {
			return false, err
		}
		if !handled {
			fmt.Fprintf(s.out, "No tab for category %q.\n", arg)
			return false, nil
		}
		s.printer.printCards(s.ctrl.DisplayedCards())
	case "search":
		if err := s.ctrl.Input(arg); err != nil {
			return false, err
		}
		s.printer.printCards(s.ctrl.DisplayedCards())
	case "load":
		if err := s.ctrl.ClickLoad(); err != nil {
			return false, err
		}
		s.printer.printCards(s.ctrl.DisplayedCards())
	case "list":
		s.printer.printCards(s.ctrl.DisplayedCards())
	case "html":
		markup, err := s.ctrl.CardsHTML()
		if err != nil {
			return false, err
		}
		fmt.Fprintln(s.out, markup)
	case "page":
		if err := s.ctrl.Document().Render(s.out); err != nil {
			return false, fmt.Errorf("error rendering page: %w", err)
		}
		fmt.Fprintln(s.out)
	default:
		fmt.Fprintf(s.out, "Unknown command %q. Type 'help' for a list of commands.\n", command)
	}
	return false, nil
}
