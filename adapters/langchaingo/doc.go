// Package langchaingo provides Custos tools and integrations for the
// tmc/langchaingo AI agent framework.
//
// These tools let Langchain-powered agents record tamper-evident proof of
// their work on CustosNetwork without leaving the agent loop.
//
// # Available Tools
//
//   - InscribeTool: inscribes a completed unit of work on-chain and returns
//     the transaction and proof identifiers as JSON.
//
// # Usage
//
// Add the tool to your agent's toolkit configuration:
//
//	client, _ := custos.NewClient(custos.ClientConfig{PrivateKey: os.Getenv("AGENT_KEY")})
//	inscribeTool := langchaingo.NewInscribeTool(client)
//	agent := initialize.NewSingleActionAgent(llm, []tools.Tool{inscribeTool})
//
//	// The agent can now inscribe proof-of-work after each completed task.
//
// # Documentation
//
// Langchaingo: https://github.com/tmc/langchaingo
package langchaingo
