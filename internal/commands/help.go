package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Show comprehensive help for timevate",
	Long:  `Display detailed help for all timevate commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			target, _, err := cmd.Root().Find(args)
			if err != nil || target == nil {
				fmt.Printf("Unknown help topic %q\n", args)
				return
			}
			_ = target.Help()
			return
		}
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
████████╗██╗███╗   ███╗███████╗██╗   ██╗ █████╗ ████████╗███████╗
╚══██╔══╝██║████╗ ████║██╔════╝██║   ██║██╔══██╗╚══██╔══╝██╔════╝
   ██║   ██║██╔████╔██║█████╗  ██║   ██║███████║   ██║   █████╗
   ██║   ██║██║╚██╔╝██║██╔══╝  ╚██╗ ██╔╝██╔══██║   ██║   ██╔══╝
   ██║   ██║██║ ╚═╝ ██║███████╗ ╚████╔╝ ██║  ██║   ██║   ███████╗
   ╚═╝   ╚═╝╚═╝     ╚═╝╚══════╝  ╚═══╝  ╚═╝  ╚═╝   ╚═╝   ╚══════╝

timevate - make every second count

COMMANDS:

  (no command)            Dashboard: greeting, today, streak, this week

  start                   Start a time-tracking session
    --no-ui               Start without the interactive stopwatch
  stop                    Stop the running session
  status                  Show the running session

  win <description>       Log a micro-win
    -c, --category        Category, e.g. Health
    -d, --duration        Duration: 90, 90s, 5m, 1h30m, 2 minutes
    --no-ui               Never open the interactive form

    Smart syntax:
      #Category     Set category
      5m, 2 minutes Duration at the end

    Example:
      timevate win "Read an article #Learning 5m"

  wins                    List recent micro-wins
    -n, --limit           How many to show (default 20)
    --today               Only today's wins

  challenges              List built-in challenges
    -d, --duration        Only 1m, 5m or 1h challenges
  challenge <id>          Run a challenge countdown
    --no-ui               Plain countdown

    Quick actions:
      space/p       Pause/resume
      esc/q         Give up

  impact                  What a second, a minute or an hour can achieve
    -t, --timeframe       Only second, minute or hour

  today                   Time spent today
  week                    Stats for the last seven days
  clear                   Delete all data
    -y, --yes             Skip confirmation

  remind                  Show reminders until ctrl+c
    --every               Interval between time checks
    --in                  One-off reminder after a duration
    --title, --body       Text of the one-off reminder
    --no-repeat           Only the one-off reminder

  config                  Show configuration
    --init                Write a config file with defaults

  version                 Print version information
  help [command]          Show this help

GLOBAL FLAGS:
  --config <file>         Config file (default ~/.timevate/config.yaml)
  --data-dir <dir>        Directory for the database and log file
  --ephemeral             Keep everything in memory, nothing is saved

`)
}
