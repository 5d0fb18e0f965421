package searcher

import "holdem/meta"

// Hyperparameters for MCTS

const C = meta.Exploration // Exploration constant, sqrt(2)

const Win = 1.0  // Reward when the bot's hand is at least as strong as the opponent's
const Loss = 0.0 // Reward when the opponent's hand is stronger
