package cli

import (
	"fmt"
)

// CompletionCmd generates shell completions
type CompletionCmd struct {
	Shell string `arg:"" enum:"bash,zsh" help:"Shell type (bash, zsh)"`
}

// Run executes the completion command
func (c *CompletionCmd) Run(globals *Globals) error {
	switch c.Shell {
	case "bash":
		_, err := fmt.Fprint(globals.Stdout, bashCompletion)
		return err
	case "zsh":
		_, err := fmt.Fprint(globals.Stdout, zshCompletion)
		return err
	default:
		return outputErrorCommon(globals, CodeInvalidArgument,
			fmt.Sprintf("unsupported shell: %s", c.Shell), "Use bash or zsh")
	}
}

const bashCompletion = `# errlens bash completion script
# Add to ~/.bashrc or ~/.bash_profile:
#   eval "$(errlens completion bash)"

_errlens_completions() {
    local cur prev
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    local commands="analyze config schema completion version"
    local periods="today week month"

    case "${prev}" in
        errlens)
            COMPREPLY=($(compgen -W "${commands} ${periods}" -- "${cur}"))
            return
            ;;
        analyze)
            COMPREPLY=($(compgen -W "${periods}" -- "${cur}"))
            return
            ;;
        -f|--format)
            COMPREPLY=($(compgen -W "json text" -- "${cur}"))
            return
            ;;
        -F|--file|--signature-file)
            COMPREPLY=($(compgen -f -- "${cur}"))
            return
            ;;
        config)
            COMPREPLY=($(compgen -W "show path generate" -- "${cur}"))
            return
            ;;
        completion)
            COMPREPLY=($(compgen -W "bash zsh" -- "${cur}"))
            return
            ;;
    esac

    COMPREPLY=($(compgen -W "-f --format -q --quiet -v --verbose -F --file --persist-signatures --signature-file" -- "${cur}"))
}

complete -F _errlens_completions errlens
`

const zshCompletion = `#compdef errlens
# errlens zsh completion script
# Add to ~/.zshrc:
#   eval "$(errlens completion zsh)"

_errlens() {
    local -a commands periods
    commands=(
        'analyze:Aggregate error lines for a period'
        'config:Show or manage configuration'
        'schema:Output JSON Schema for the report'
        'completion:Generate shell completions'
        'version:Show version information'
    )
    periods=(today week month)

    _arguments \
        '(-f --format)'{-f,--format}'[Output format]:format:(json text)' \
        '(-q --quiet)'{-q,--quiet}'[Suppress diagnostics]' \
        '(-v --verbose)'{-v,--verbose}'[Show debug output]' \
        '(-F --file)'{-F,--file}'[Error log to read]:file:_files' \
        '--persist-signatures[Record signatures in the signature store]' \
        '--signature-file[Signature store path]:file:_files' \
        '1: :->first'

    case $state in
        first)
            _describe 'command' commands
            _values 'period' $periods
            ;;
    esac
}

compdef _errlens errlens
`
