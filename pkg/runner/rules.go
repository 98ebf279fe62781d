package runner

// DefaultRules is the markdown shown on the instructions screen.
const DefaultRules = `# Tower of Hanoi

Move all disks from rod **A** to rod **C**.

- You can move only the top disk of a rod.
- A larger disk cannot be placed on a smaller disk.
- Enter moves as two letters, source then destination (for example ` + "`A C`" + `).
- Enter ` + "`Q`" + ` during a move prompt to return to the menu, or ` + "`?`" + ` to see these rules.
`

const menuText = `=== Tower of Hanoi ===
1. Play
2. Instructions
3. Exit`

const moveHint = "Move format: from/to using letters A/B/C (e.g., A C)"
